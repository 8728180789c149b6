package testutil

import (
	"bytes"
	"fmt"
	"sync"
)

// Output captures Printf/Println calls made through action dependencies.
type Output struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (o *Output) Printf(format string, args ...any) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return fmt.Fprintf(&o.buf, format, args...)
}

func (o *Output) Println(args ...any) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return fmt.Fprintln(&o.buf, args...)
}

func (o *Output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}
