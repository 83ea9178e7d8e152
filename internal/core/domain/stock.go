package domain

import "strings"

// Stock is the ordered list of item names held by a store.
type Stock struct {
	Label string
	items []string
}

func NewStock(label string, items []string) *Stock {
	s := &Stock{
		Label: label,
		items: make([]string, len(items)),
	}
	copy(s.items, items)
	return s
}

func (s *Stock) Add(name string) {
	s.items = append(s.items, name)
}

// Remove drops the first occurrence of name, keeping the order of the rest.
// It reports false and leaves the stock untouched when name is absent.
func (s *Stock) Remove(name string) bool {
	for i, item := range s.items {
		if item == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Stock) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Stock) Len() int {
	return len(s.items)
}

// String renders the items as "[a, b, c]".
func (s *Stock) String() string {
	return FormatItems(s.items)
}

func (s *Stock) Snapshot() StockSnapshot {
	return StockSnapshot{
		Label: s.Label,
		Items: s.Items(),
	}
}

type StockSnapshot struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

func FormatItems(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
