// Package transcript provides a Listener that follows a transcript file.
//
// An external speech-to-text process appends one recognised utterance per
// line; each complete, non-blank line becomes one response. Partial lines
// (no trailing newline yet) are held until they are finished.
package transcript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fieldreport-cli/internal/logger"
)

// Ensure Listener implements the interface.
var _ driven.Listener = (*Listener)(nil)

// Listener tails a transcript file using filesystem notifications.
type Listener struct {
	path    string
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	offset int64
	closed bool
}

// Option configures a Listener.
type Option func(*Listener)

// FromStart replays lines already in the file instead of skipping them.
func FromStart() Option {
	return func(l *Listener) { l.offset = -1 }
}

// NewListener starts watching path. The file need not exist yet.
// By default only lines appended after this call are returned.
func NewListener(path string, opts ...Option) (*Listener, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve transcript path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so creation and truncate-by-replace are seen.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	l := &Listener{path: abs, watcher: watcher}
	for _, opt := range opts {
		opt(l)
	}

	if l.offset < 0 {
		l.offset = 0
	} else if info, err := os.Stat(abs); err == nil {
		l.offset = info.Size()
	}

	return l, nil
}

// Path returns the absolute path being followed.
func (l *Listener) Path() string {
	return l.path
}

// Listen blocks until the next complete, non-blank line is appended.
func (l *Listener) Listen(ctx context.Context) (string, error) {
	for {
		text, ok, err := l.next()
		if err != nil {
			return "", err
		}
		if ok {
			return text, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case event, open := <-l.watcher.Events:
			if !open {
				return "", domain.ErrListenerClosed
			}
			if filepath.Clean(event.Name) != l.path {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				l.reset()
			}
		case err, open := <-l.watcher.Errors:
			if !open {
				return "", domain.ErrListenerClosed
			}
			logger.Warn("transcript watcher: %v", err)
		}
	}
}

// Close stops watching. Pending and later Listen calls return domain.ErrListenerClosed.
func (l *Listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.watcher.Close()
}

func (l *Listener) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.offset = 0
}

// next reads the first complete non-blank line past the offset.
func (l *Listener) next() (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return "", false, domain.ErrListenerClosed
	}

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", false, fmt.Errorf("stat transcript: %w", err)
	}
	if info.Size() < l.offset {
		// Truncated in place; start over.
		l.offset = 0
	}

	if _, err := f.Seek(l.offset, io.SeekStart); err != nil {
		return "", false, fmt.Errorf("seek transcript: %w", err)
	}

	reader := bufio.NewReader(f)
	for {
		raw, err := reader.ReadString('\n')
		if err != nil {
			// Partial or no line; wait for more.
			return "", false, nil
		}
		l.offset += int64(len(raw))

		if text := strings.TrimSpace(raw); text != "" {
			return text, true, nil
		}
	}
}
