// Package ui provides terminal output utilities including pager support.
//
// The pager runs whatever command --pager, the pager config key or $PAGER
// names. Only configure pagers you trust.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/raven-themes/raven/internal/domain"
)

// defaultPager is used when neither config nor $PAGER name one.
var defaultPager = []string{"less", "-FRSX"}

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTTY         func(io.Writer) bool
	runPager      func(argv []string, content string, out io.Writer) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets the function used to read the pager config key.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a Writer for stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer for out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
		isTTY:     writerIsTerminal,
		runPager:  execPager,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager when the output is a terminal.
//
// Precedence:
//  1. --no-pager or a non-terminal output: direct output
//  2. --pager=<cmd>
//  3. pager config key
//  4. $PAGER
//  5. less -FRSX
//
// "cat" anywhere in the chain means direct output.
func (w *Writer) Pager(content string) {
	argv := w.pagerCommand()
	if argv == nil {
		fmt.Fprint(w.out, content)
		return
	}
	if err := w.runPager(argv, content, w.out); err != nil {
		fmt.Fprint(w.out, content)
	}
}

// pagerCommand returns nil when content should be written directly.
func (w *Writer) pagerCommand() []string {
	if w.pagerDisabled || !w.isTTY(w.out) {
		return nil
	}
	if w.pagerOverride != "" {
		return splitPager(w.pagerOverride)
	}
	if w.configGetter != nil {
		if v, ok := w.configGetter("pager"); ok && v != "" {
			return splitPager(v)
		}
	}
	if w.envGetter != nil {
		if v := w.envGetter("PAGER"); v != "" {
			return splitPager(v)
		}
	}
	return defaultPager
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && IsTerminal(f)
}

func splitPager(cmd string) []string {
	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return nil
	}
	return parts
}

func execPager(argv []string, content string, out io.Writer) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

var _ domain.OutputWriter = (*Writer)(nil)
