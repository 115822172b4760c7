package history

import (
	"fmt"
	"slices"
)

const DefaultCapacity = 20

type Entry struct {
	Op  string  `json:"op"`
	Res float64 `json:"res"`
}

func (e Entry) String() string {
	return fmt.Sprintf("Entry(op=%s, res=%g)", e.Op, e.Res)
}

// Log is a bounded, oldest first record of computed results. Undone
// entries are parked on a redo stack until they are redone or a new
// entry is recorded.
//
// Log is not safe for concurrent use.
type Log struct {
	capacity int
	entries  []Entry
	redo     []Entry
}

func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Log{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

func (l *Log) Record(op string, res float64) {
	l.push(Entry{Op: op, Res: res})
	l.redo = l.redo[:0]
}

// Undo moves the newest entry onto the redo stack and reports whether
// there was anything to undo.
func (l *Log) Undo() bool {
	if len(l.entries) == 0 {
		return false
	}

	last := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	l.redo = append(l.redo, last)

	return true
}

// Redo replays the most recently undone entry and reports whether
// there was anything to redo.
func (l *Log) Redo() bool {
	if len(l.redo) == 0 {
		return false
	}

	last := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.push(last)

	return true
}

// Restore replaces the contents of the log, keeping only the newest
// entries that fit, and drops any pending redo.
func (l *Log) Restore(entries []Entry) {
	if len(entries) > l.capacity {
		entries = entries[len(entries)-l.capacity:]
	}

	l.entries = append(l.entries[:0], entries...)
	l.redo = l.redo[:0]
}

func (l *Log) Entries() []Entry {
	return slices.Clone(l.entries)
}

func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) Redoable() int {
	return len(l.redo)
}

func (l *Log) Capacity() int {
	return l.capacity
}

func (l *Log) String() string {
	return fmt.Sprintf("History(len=%d, redo=%d, capacity=%d)", len(l.entries), len(l.redo), l.capacity)
}

func (l *Log) push(e Entry) {
	if len(l.entries) >= l.capacity {
		// shift in place, the backing array never grows past capacity
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, e)
}
