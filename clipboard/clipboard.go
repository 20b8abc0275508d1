// Package clipboard provides clipboards for the address bar context menu.
package clipboard

import (
	"context"
	"errors"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnsupported is returned by System when the platform has no clipboard
// utility available (for example a headless Linux box without xclip).
var ErrUnsupported = errors.New("clipboard: unsupported on this system")

// System reads and writes the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether the system clipboard can be used.
func (s *System) Available() bool {
	return !sysclip.Unsupported
}

// ReadText returns the clipboard contents.
func (s *System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if sysclip.Unsupported {
		return "", ErrUnsupported
	}
	return sysclip.ReadAll()
}

// WriteText replaces the clipboard contents.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return sysclip.WriteAll(text)
}

// Memory is an in-process clipboard, for hosts without a system clipboard
// and for tests.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates a memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ReadText returns the stored text.
func (m *Memory) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
