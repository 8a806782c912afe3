// Package clipboard writes copy values to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard mechanism exists.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// System is the OS clipboard (pbcopy, xclip, xsel, wl-copy, or the Windows API).
type System struct {
	writeAll    func(string) error
	unsupported bool
}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{
		writeAll:    clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// Available reports whether a clipboard command was found at startup.
func (s *System) Available() bool {
	return s != nil && !s.unsupported && s.writeAll != nil
}

// Write copies text. The external helper may hang (for example xclip without a
// display), so the call gives up when ctx is done.
func (s *System) Write(ctx context.Context, text string) error {
	if !s.Available() {
		return ErrUnavailable
	}

	done := make(chan error, 1)
	go func() {
		done <- s.writeAll(text)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("clipboard write: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("clipboard write: %w", err)
		}
		return nil
	}
}

// Memory is an in-process clipboard.
type Memory struct {
	mu     sync.Mutex
	writes []string
	Err    error
}

// Write records text, or fails with m.Err when set.
func (m *Memory) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.writes = append(m.writes, text)
	return nil
}

// Last returns the most recent successful write.
func (m *Memory) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return "", false
	}
	return m.writes[len(m.writes)-1], true
}

// Writes returns every successful write in order.
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}
