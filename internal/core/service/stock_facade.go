package service

import (
	"context"
	"fmt"
	"io"
	"os"

	pkgerr "github.com/pkg/errors"
)

// StockFacade is the narrow add/remove/display surface over the shared stock.
// It keeps no items of its own.
type StockFacade struct {
	stock *StockService
	out   io.Writer
}

// NewStockFacade binds to the provider's stock, creating it on first use.
// A nil out writes to standard output.
func NewStockFacade(provider *StockProvider, label string, items []string, out io.Writer) *StockFacade {
	if out == nil {
		out = os.Stdout
	}
	return &StockFacade{
		stock: provider.Initialize(label, items),
		out:   out,
	}
}

func (f *StockFacade) Add(ctx context.Context, name string) error {
	return f.stock.AddItem(ctx, name)
}

func (f *StockFacade) Remove(ctx context.Context, name string) error {
	return f.stock.RemoveItem(ctx, name)
}

func (f *StockFacade) Display() error {
	_, err := fmt.Fprintf(f.out, "Almacén de %s: %s\n", f.stock.Label(), f.stock.String())
	return pkgerr.Wrap(err, "display stock")
}
