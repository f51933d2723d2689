package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// RotatingFileWriter is an io.Writer that rotates the underlying file
// once it would exceed maxSize bytes. Backups are kept as path.1 (newest)
// through path.N (oldest).
type RotatingFileWriter struct {
	mu         sync.Mutex
	file       *os.File
	path       string
	maxSize    int64
	maxBackups int
	size       int64
}

// NewRotatingFileWriter opens (or creates) the log file at path
func NewRotatingFileWriter(path string, maxSize int64, maxBackups int) (*RotatingFileWriter, error) {
	w := &RotatingFileWriter{
		path:       path,
		maxSize:    maxSize,
		maxBackups: maxBackups,
	}

	if err := w.open(); err != nil {
		return nil, err
	}

	info, err := w.file.Stat()
	if err != nil {
		_ = w.file.Close()
		return nil, err
	}
	w.size = info.Size()

	return w, nil
}

// Write implements io.Writer
func (w *RotatingFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.size+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// Close closes the current log file
func (w *RotatingFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	return w.file.Close()
}

func (w *RotatingFileWriter) open() error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	w.file = f
	return nil
}

// rotate shifts path.N-1 -> path.N up the chain, moves the live file to
// path.1, and reopens a fresh one. The oldest backup falls off the end.
func (w *RotatingFileWriter) rotate() error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return err
		}
	}

	for i := w.maxBackups; i > 1; i-- {
		older := fmt.Sprintf("%s.%d", w.path, i-1)
		newer := fmt.Sprintf("%s.%d", w.path, i)
		if _, err := os.Stat(older); err == nil {
			if err := os.Rename(older, newer); err != nil {
				return err
			}
		}
	}

	if w.maxBackups > 0 {
		_ = os.Rename(w.path, fmt.Sprintf("%s.1", w.path))
	} else {
		_ = os.Remove(w.path)
	}

	if err := w.open(); err != nil {
		return err
	}
	w.size = 0
	return nil
}

var _ io.WriteCloser = (*RotatingFileWriter)(nil)
