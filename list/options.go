package list

import (
	"io"
	"os"

	fmt2 "github.com/qjpcpu/linkedlist/fmt"
)

// DefaultSeparator between rendered values
const DefaultSeparator = " ----> "

type printOptions struct {
	Output    io.Writer
	Separator string
	Colored   bool
}

// PrintOption configure printing
type PrintOption func(*printOptions)

/* private methods */
func newPrintOptions(opts ...PrintOption) *printOptions {
	o := &printOptions{
		Output:    os.Stdout,
		Separator: DefaultSeparator,
		Colored:   fmt2.Colored(),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithOutput set writer, stdout by default
func WithOutput(w io.Writer) PrintOption {
	return func(o *printOptions) {
		o.Output = w
	}
}

// WithSeparator set separator between values, DefaultSeparator by default
func WithSeparator(sep string) PrintOption {
	return func(o *printOptions) {
		o.Separator = sep
	}
}

// WithColor force color on or off, terminal detection by default
func WithColor(colored bool) PrintOption {
	return func(o *printOptions) {
		o.Colored = colored
	}
}
