// Package game drives a field the way a game loop would: it spawns pieces,
// applies player commands and gravity ticks, and clears completed lines.
// Timing, input devices and rendering are left to the caller.
package game

import (
	"fmt"

	"github.com/plus3/blockfield/field"
	"github.com/plus3/blockfield/piece"
)

// Command is a single player action or gravity tick.
type Command uint8

const (
	Tick Command = iota
	Left
	Right
	Rotate
	// Drop repeats Tick until the current piece lands.
	Drop
)

var commandNames = [...]string{
	Tick:   "tick",
	Left:   "left",
	Right:  "right",
	Rotate: "rotate",
	Drop:   "drop",
}

// Commands lists every command in declaration order.
var Commands = []Command{Tick, Left, Right, Rotate, Drop}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// Options configures a Session.
type Options struct {
	Field field.Config
	Seed  uint64
}

// DefaultOptions returns options for the standard 24x10 board.
func DefaultOptions() Options {
	return Options{Field: field.DefaultConfig()}
}

// Event reports what a single Apply call did.
type Event struct {
	Command Command
	// Moved is true when the piece changed position or orientation.
	Moved     bool
	Landed    bool
	LandedRow int
	Cleared   int
	// NewPiece is true when a piece was spawned after a landing; Spawned
	// holds its kind.
	NewPiece bool
	Spawned  piece.Kind
	GameOver bool
}

// Stats counts what happened during a session.
type Stats struct {
	Ticks     int
	Moves     int
	Rotations int
	Pieces    int
	Lines     int
}

// Session owns a field and plays the caller role the engine expects. It is
// not safe for concurrent use.
type Session struct {
	opts    Options
	field   *field.Field
	bag     *piece.Bag
	current piece.Kind
	over    bool
	stats   Stats
}

// New creates a session and spawns its first piece.
func New(opts Options) (*Session, error) {
	f, err := field.NewWithConfig(opts.Field)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	s := &Session{opts: opts, field: f}
	s.Restart()
	return s, nil
}

// Restart clears the field and starts over with the original seed.
func (s *Session) Restart() {
	s.field.Reset()
	s.bag = piece.NewBag(s.opts.Seed)
	s.over = false
	s.stats = Stats{}
	s.spawn()
}

// Field returns the grid the session plays on. Restart reuses it.
func (s *Session) Field() *field.Field { return s.field }

// Over reports whether the last spawn failed.
func (s *Session) Over() bool { return s.over }

// Lines returns the number of lines cleared since the last restart.
func (s *Session) Lines() int { return s.stats.Lines }

// Stats returns a copy of the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Current returns the kind of the falling piece.
func (s *Session) Current() piece.Kind { return s.current }

// Next returns the kind of the piece that spawns after the current one lands.
func (s *Session) Next() piece.Kind { return s.bag.Peek() }

// Apply runs one command. Once the game is over every command is ignored.
func (s *Session) Apply(cmd Command) Event {
	ev := Event{Command: cmd, LandedRow: -1}
	if s.over {
		ev.GameOver = true
		return ev
	}

	switch cmd {
	case Tick:
		s.tick(&ev)
	case Left:
		ev.Moved = s.field.MoveLeft()
		s.countMove(ev.Moved)
	case Right:
		ev.Moved = s.field.MoveRight()
		s.countMove(ev.Moved)
	case Rotate:
		ev.Moved = s.field.Rotate()
		if ev.Moved {
			s.stats.Rotations++
		}
	case Drop:
		// A piece cannot fall further than the grid is tall.
		for range s.field.Rows() + 1 {
			s.tick(&ev)
			if ev.Landed || ev.GameOver {
				break
			}
		}
	}
	return ev
}

func (s *Session) countMove(moved bool) {
	if moved {
		s.stats.Moves++
	}
}

func (s *Session) tick(ev *Event) {
	s.stats.Ticks++
	if s.field.Count(field.Falling) == 0 {
		s.next(ev)
		return
	}

	res := s.field.Advance()
	if !res.Landed {
		ev.Moved = true
		return
	}

	ev.Landed = true
	ev.LandedRow = res.LandedRow
	if res.HasLinesToClear {
		ev.Cleared = s.field.ClearMarkedLines()
		s.stats.Lines += ev.Cleared
	}
	s.next(ev)
}

func (s *Session) next(ev *Event) {
	s.spawn()
	if s.over {
		ev.GameOver = true
		return
	}
	ev.NewPiece = true
	ev.Spawned = s.current
}

func (s *Session) spawn() {
	k := s.bag.Next()
	if !piece.Spawn(s.field, k) {
		s.over = true
		return
	}
	s.current = k
	s.stats.Pieces++
}
