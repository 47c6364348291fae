package quiz

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// State is the engine's screen state.
type State string

const (
	StateMenu          State = "menu"
	StatePlaying       State = "playing"
	StateLevelComplete State = "levelComplete"
	StateGameComplete  State = "gameComplete"
)

var (
	ErrUnknownLevel    = errors.New("no such level")
	ErrLevelLocked     = errors.New("level is locked")
	ErrNotPlaying      = errors.New("no level in play")
	ErrInvalidOption   = errors.New("option out of range")
	ErrNotAnswered     = errors.New("question not answered yet")
	ErrNotComplete     = errors.New("level not complete")
	ErrConfirmRequired = errors.New("reset requires confirmation")
)

// Engine runs one player's quiz session. Progress mutations are written
// through to the store; a store failure is logged and the in-memory state
// keeps going.
type Engine struct {
	mu    sync.Mutex
	bank  *Bank
	store ProgressStore
	user  string

	state    State
	progress Progress

	level     int
	qIndex    int
	score     int
	answered  bool
	selected  int
	passed    bool
}

// NewEngine creates an engine for one player, loading any persisted
// progress. A store failure falls back to the empty state.
func NewEngine(ctx context.Context, bank *Bank, store ProgressStore, user string) *Engine {
	p, err := store.Load(ctx, user)
	if err != nil {
		slog.Warn("loading quiz progress failed, starting fresh", "user", user, "error", err)
		p = NewProgress()
	}
	return &Engine{
		bank:     bank,
		store:    store,
		user:     user,
		state:    StateMenu,
		progress: p,
	}
}

// Start begins a level. Locked levels cannot be started and starting one
// changes nothing.
func (e *Engine) Start(level int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.bank.Level(level); !ok {
		return ErrUnknownLevel
	}
	if !e.progress.IsUnlocked(level) {
		return ErrLevelLocked
	}

	e.state = StatePlaying
	e.level = level
	e.qIndex = 0
	e.score = 0
	e.answered = false
	e.passed = false
	return nil
}

// Answer records the selected option for the current question. Submitting
// again after the result is shown is a no-op.
func (e *Engine) Answer(option int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return ErrNotPlaying
	}
	if e.answered {
		return nil
	}

	lvl, _ := e.bank.Level(e.level)
	q := lvl.Questions[e.qIndex]
	if option < 0 || option >= len(q.Options) {
		return ErrInvalidOption
	}

	e.answered = true
	e.selected = option
	if option == q.Correct {
		e.score++
	}
	return nil
}

// Advance moves past an answered question. On the final question it settles
// the level: a pass records completion and the score, a fail changes no
// progress at all.
func (e *Engine) Advance(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return ErrNotPlaying
	}
	if !e.answered {
		return ErrNotAnswered
	}

	lvl, _ := e.bank.Level(e.level)
	if e.qIndex+1 < len(lvl.Questions) {
		e.qIndex++
		e.answered = false
		return nil
	}

	e.passed = e.score >= lvl.PassScore
	if e.passed {
		e.progress.markCompleted(e.level)
		e.progress.Scores[e.level] = e.score
		if next := e.level + 1; next <= e.bank.MaxLevel() && next > e.progress.CurrentLevel {
			e.progress.CurrentLevel = next
		}
		e.persist(ctx)
	}

	if e.passed && e.level == e.bank.MaxLevel() {
		e.state = StateGameComplete
	} else {
		e.state = StateLevelComplete
	}
	return nil
}

// TryAgain restarts the level just finished.
func (e *Engine) TryAgain() error {
	e.mu.Lock()
	level := e.level
	if e.state != StateLevelComplete && e.state != StateGameComplete {
		e.mu.Unlock()
		return ErrNotComplete
	}
	e.mu.Unlock()
	return e.Start(level)
}

// NextLevel moves on from a passed level to the following one.
func (e *Engine) NextLevel() error {
	e.mu.Lock()
	if e.state != StateLevelComplete || !e.passed {
		e.mu.Unlock()
		return ErrNotComplete
	}
	next := e.level + 1
	e.mu.Unlock()
	return e.Start(next)
}

// Menu returns to the level menu from any state.
func (e *Engine) Menu() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateMenu
}

// Reset wipes all progress. The caller must pass confirm=true; the deletion
// also removes the persisted record.
func (e *Engine) Reset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrConfirmRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.progress = NewProgress()
	e.state = StateMenu
	if err := e.store.Delete(ctx, e.user); err != nil {
		slog.Warn("deleting quiz progress failed", "user", e.user, "error", err)
	}
	return nil
}

// Completed reports whether every level has been passed.
func (e *Engine) Completed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.progress.CompletedLevels) == e.bank.MaxLevel()
}

func (e *Engine) persist(ctx context.Context) {
	if err := e.store.Save(ctx, e.user, e.progress); err != nil {
		slog.Warn("saving quiz progress failed", "user", e.user, "error", err)
	}
}
