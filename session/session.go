// SPDX-License-Identifier: MIT

// Package session holds the editable state of one evaluator window: the two
// operand texts, the last result text and the undo/redo history around them.
//
// Front ends (the CLI REPL, a GUI) drive a Session; it owns parsing,
// dispatch and history capture so that every front end records history the
// same way:
//   - a successful evaluation pushes the pre-evaluation state, then shows the result;
//   - a failed evaluation shows a prefixed message and records nothing;
//   - Clear and Replace are undoable; SetA/SetB are plain edits.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ETsETs777/Matrix-Desktop/catalog"
	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/dispatch"
	"github.com/ETsETs777/Matrix-Desktop/evalerr"
	"github.com/ETsETs777/Matrix-Desktop/history"
)

// Session is safe for concurrent use; calls are serialized.
type Session struct {
	id string

	mu     sync.Mutex
	a, b   string
	result string

	hist *history.Manager
	disp *dispatch.Dispatcher
	log  *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithDispatcher sets the evaluator (numeric policy, formatter).
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(s *Session) {
		if d != nil {
			s.disp = d
		}
	}
}

// WithHistory sets the history manager, e.g. one built with history.WithLimit.
func WithHistory(h *history.Manager) Option {
	return func(s *Session) {
		if h != nil {
			s.hist = h
		}
	}
}

// WithLogger attaches a zap logger; the session id is added to every entry.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns an empty session with a fresh id.
func New(opts ...Option) *Session {
	s := &Session{
		id:   uuid.NewString(),
		hist: history.New(),
		disp: dispatch.New(),
		log:  zap.NewNop(),
	}
	for _, set := range opts {
		set(s)
	}
	s.log = s.log.With(zap.String("session", s.id))

	return s
}

// ID is the session's uuid.
func (s *Session) ID() string { return s.id }

// SetA replaces the operand A text. Not recorded in history.
func (s *Session) SetA(text string) {
	s.mu.Lock()
	s.a = text
	s.mu.Unlock()
}

// SetB replaces the operand B text. Not recorded in history.
func (s *Session) SetB(text string) {
	s.mu.Lock()
	s.b = text
	s.mu.Unlock()
}

// State returns the current snapshot.
func (s *Session) State() history.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

func (s *Session) state() history.Snapshot {
	return history.Snapshot{A: s.a, B: s.b, Result: s.result}
}

func (s *Session) restore(snap history.Snapshot) {
	s.a, s.b, s.result = snap.A, snap.B, snap.Result
}

// Evaluate parses both operand texts, runs op and returns the new result text.
// Any failure replaces the result with a user message ("Input error: …",
// "Linear algebra: …" or "Error: …") and leaves history untouched.
func (s *Session) Evaluate(op catalog.Op) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	res, err := s.evaluate(op)
	if err != nil {
		s.result = evalerr.UserMessage(err)
		kind, _ := evalerr.KindOf(err)
		s.log.Info("evaluation rejected",
			zap.Stringer("op", op),
			zap.Stringer("kind", kind),
			zap.Error(err))
		return s.result
	}

	s.hist.Push(s.state())
	s.result = res.Text()
	s.log.Info("evaluation done",
		zap.Stringer("op", op),
		zap.Duration("took", time.Since(start)))

	return s.result
}

func (s *Session) evaluate(op catalog.Op) (dispatch.Result, error) {
	a, err := codec.ParseOperand("A", s.a)
	if err != nil {
		return dispatch.Result{}, err
	}
	b, err := codec.ParseOperand("B", s.b)
	if err != nil {
		return dispatch.Result{}, err
	}

	return s.disp.Evaluate(op, a, b)
}

// EvaluateID is Evaluate for a textual op id such as "invA".
func (s *Session) EvaluateID(id string) string {
	op, err := catalog.ParseOp(id)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.result = evalerr.UserMessage(err)
		return s.result
	}

	return s.Evaluate(op)
}

// Clear blanks A, B and the result. Undoable; a no-op on an empty session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state() == (history.Snapshot{}) {
		return
	}
	s.hist.Push(s.state())
	s.restore(history.Snapshot{})
	s.log.Debug("cleared")
}

// Replace installs snap as the new state (imports, pasted documents). Undoable.
func (s *Session) Replace(snap history.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hist.Push(s.state())
	s.restore(snap)
}

// Undo restores the previous state; false when there is none.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.hist.Undo(s.state())
	if ok {
		s.restore(prev)
	}
	s.log.Debug("undo", zap.Bool("applied", ok))

	return ok
}

// Redo re-applies the state undone last; false when there is none.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.hist.Redo(s.state())
	if ok {
		s.restore(next)
	}
	s.log.Debug("redo", zap.Bool("applied", ok))

	return ok
}

// CanUndo reports whether Undo would change the state.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether Redo would change the state.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }
