// Package console provides a line-based Listener and Speaker over plain streams.
// Each line read is one transcribed response; prompts are printed as lines.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
)

// Ensure Console implements both speech ports.
var (
	_ driven.Listener = (*Console)(nil)
	_ driven.Speaker  = (*Console)(nil)
)

// Console reads transcripts from in and writes prompts to out.
type Console struct {
	out io.Writer

	startOnce sync.Once
	in        io.Reader
	lines     chan line
}

type line struct {
	text string
	err  error
}

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

// Speak prints the prompt on its own line.
func (c *Console) Speak(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}

// Listen blocks until the next line is read or ctx is done.
// End of input is reported as domain.ErrListenerClosed.
func (c *Console) Listen(ctx context.Context) (string, error) {
	c.startOnce.Do(func() { go c.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", domain.ErrListenerClosed
		}
		return l.text, l.err
	}
}

// read pumps lines from the input until it ends. Reads cannot be interrupted,
// so the goroutine outlives a cancelled Listen until the next line arrives.
// Lines have no length limit.
func (c *Console) read() {
	defer close(c.lines)

	reader := bufio.NewReader(c.in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" && (err == nil || errors.Is(err, io.EOF)) {
			c.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			c.lines <- line{err: fmt.Errorf("read input: %w", err)}
			return
		}
	}
}
