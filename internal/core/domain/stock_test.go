package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStock_CopiesInitialItems(t *testing.T) {
	initial := []string{"Cafe", "Leche"}
	s := NewStock("Almacén Central", initial)

	initial[0] = "Te"

	assert.Equal(t, "Almacén Central", s.Label)
	assert.Equal(t, []string{"Cafe", "Leche"}, s.Items())
}

func TestAdd_AppendsInOrder(t *testing.T) {
	s := NewStock("store", []string{"Cafe"})

	s.Add("Crema")
	s.Add("Azucar")
	s.Add("Crema")

	assert.Equal(t, []string{"Cafe", "Crema", "Azucar", "Crema"}, s.Items())
}

func TestRemove_FirstOccurrenceOnly(t *testing.T) {
	s := NewStock("store", []string{"Leche", "Cafe", "Leche", "Galletas"})

	ok := s.Remove("Leche")

	assert.True(t, ok)
	assert.Equal(t, []string{"Cafe", "Leche", "Galletas"}, s.Items())
}

func TestRemove_MissingLeavesStockUnchanged(t *testing.T) {
	s := NewStock("store", []string{"Cafe", "Galletas"})

	ok := s.Remove("Torta")

	assert.False(t, ok)
	assert.Equal(t, []string{"Cafe", "Galletas"}, s.Items())
}

func TestRemove_ExactMatch(t *testing.T) {
	s := NewStock("store", []string{"cafe"})

	assert.False(t, s.Remove("Cafe"))
	assert.Equal(t, 1, s.Len())
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewStock("store", []string{"Cafe"})

	items := s.Items()
	items[0] = "Te"

	assert.Equal(t, []string{"Cafe"}, s.Items())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[]", NewStock("store", nil).String())
	assert.Equal(t, "[Cafe]", NewStock("store", []string{"Cafe"}).String())
	assert.Equal(t, "[Cafe, Galletas, Crema, Azucar]",
		NewStock("store", []string{"Cafe", "Galletas", "Crema", "Azucar"}).String())
}

func TestSnapshot(t *testing.T) {
	s := NewStock("store", []string{"Cafe"})
	snap := s.Snapshot()

	s.Add("Leche")

	assert.Equal(t, StockSnapshot{Label: "store", Items: []string{"Cafe"}}, snap)
}
