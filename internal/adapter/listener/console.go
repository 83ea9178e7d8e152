package listener

import (
	"context"
	"fmt"
	"io"
	"os"
)

const consolePrefix = "Notificación: "

// ConsoleListener prints each notification on its own line.
type ConsoleListener struct {
	out io.Writer
}

func NewConsoleListener(out io.Writer) *ConsoleListener {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleListener{out: out}
}

func (c *ConsoleListener) Receive(ctx context.Context, message string) error {
	_, err := fmt.Fprintln(c.out, consolePrefix+message)
	return err
}
