package play

import (
	"fmt"

	"github.com/plus3/tetris/tetris"
)

// DefaultLogSize is the number of entries an EventLog keeps by default.
const DefaultLogSize = 64

// Entry is one kernel notification.
type Entry struct {
	// Seq numbers entries from 1 across the whole session.
	Seq  int
	Text string
}

// EventLog keeps the most recent kernel notifications as text, oldest first.
type EventLog struct {
	tetris.BaseListener
	entries []Entry
	size    int
	start   int
	seq     int
}

// NewEventLog returns a log holding at most size entries.
func NewEventLog(size int) *EventLog {
	if size <= 0 {
		size = DefaultLogSize
	}
	return &EventLog{
		entries: make([]Entry, 0, size),
		size:    size,
	}
}

// Entries returns the retained entries, oldest first.
func (l *EventLog) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	out = append(out, l.entries[l.start:]...)
	out = append(out, l.entries[:l.start]...)
	return out
}

// Len returns the number of retained entries.
func (l *EventLog) Len() int { return len(l.entries) }

// Total returns the number of entries ever added.
func (l *EventLog) Total() int { return l.seq }

// Clear drops every entry. Sequence numbers keep counting.
func (l *EventLog) Clear() {
	l.entries = l.entries[:0]
	l.start = 0
}

func (l *EventLog) add(format string, args ...any) {
	l.seq++
	e := Entry{Seq: l.seq, Text: fmt.Sprintf(format, args...)}
	if len(l.entries) < l.size {
		l.entries = append(l.entries, e)
		return
	}
	l.entries[l.start] = e
	l.start = (l.start + 1) % l.size
}

func (l *EventLog) OnSpawn(p tetris.Piece) { l.add("spawn %s at %d,%d", p.Kind, p.X, p.Y) }

func (l *EventLog) OnMove(dir tetris.Direction) { l.add("move %s", dir) }

func (l *EventLog) OnRotate(dir tetris.Direction) { l.add("rotate %s", dir) }

func (l *EventLog) OnInvalidMove() { l.add("invalid move") }

func (l *EventLog) OnDropped() { l.add("dropped") }

func (l *EventLog) OnRowsEliminated(rows int) { l.add("cleared %d rows", rows) }

func (l *EventLog) OnGameOver() { l.add("game over") }
