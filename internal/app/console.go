package app

import (
	"bytes"
	"sync"
)

// Console keeps the most recent log lines for display inside the UI, where
// writing to stderr would corrupt the screen. It is an io.Writer so it can
// back a log.Logger.
type Console struct {
	mu      sync.Mutex
	lines   []string
	limit   int
	partial []byte
}

// NewConsole returns a Console retaining up to limit lines.
func NewConsole(limit int) *Console {
	if limit <= 0 {
		limit = 1
	}
	return &Console{limit: limit}
}

// Write splits p into lines and appends them, dropping the oldest.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data := append(c.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		c.push(string(data[:i]))
		data = data[i+1:]
	}
	c.partial = append(c.partial[:0:0], data...)
	return len(p), nil
}

func (c *Console) push(line string) {
	c.lines = append(c.lines, line)
	if over := len(c.lines) - c.limit; over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
}

// Lines returns a copy of the retained lines, oldest first.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

// Tail returns at most n of the newest lines, oldest first.
func (c *Console) Tail(n int) []string {
	lines := c.Lines()
	if n >= 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
