// Package tui renders live build progress in the terminal.
package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// TapeSource is an interface for reading progrock updates.
// *progrock.Tape does not implement Read(), so the caller provides a source
// such as a Feed.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

var _ progrock.Writer = (*Feed)(nil)

// Feed is an unbounded in-memory queue of status updates. It is written by a
// progrock recorder and read by the TUI model. Writers never block, so a
// stalled or exited TUI cannot stall the build.
type Feed struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []*progrock.StatusUpdate
	closed  bool
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	f := &Feed{}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// WriteStatus queues an update. Updates written after Close are dropped.
func (f *Feed) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.pending = append(f.pending, update)
	f.cond.Signal()
	return nil
}

// Close ends the feed. Queued updates are still delivered before Read
// reports io.EOF.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.cond.Broadcast()
	return nil
}

// Read blocks until an update is available or the feed is closed and drained.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for len(f.pending) == 0 && !f.closed {
		f.cond.Wait()
	}
	if len(f.pending) == 0 {
		return nil, io.EOF
	}
	update := f.pending[0]
	f.pending[0] = nil
	f.pending = f.pending[1:]
	return update, nil
}

// WaitForTape returns a Bubble Tea command that reads the next update from the tape.
// It returns MsgTapeUpdate on success or MsgTapeEnded on EOF or error.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		if err != nil {
			return MsgTapeEnded{}
		}
		return MsgTapeUpdate{Update: update}
	}
}
