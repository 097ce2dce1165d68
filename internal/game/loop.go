package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// GameID is the identifier scores are stored under.
const GameID = "snake"

// DefaultTick is the per-tick key wait while playing.
const DefaultTick = 120 * time.Millisecond

// ScoreStore persists finished games. Implemented by storage.Store.
type ScoreStore interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options configures a Loop.
type Options struct {
	Width    int
	Height   int
	Tick     time.Duration
	Bindings Bindings
	Logger   *log.Logger
	Scores   ScoreStore // nil disables score recording
}

// Loop drives one session through START -> PLAYING -> END -> START.
// It is single-threaded: all session mutation happens inside Run.
type Loop struct {
	display Display
	session *snake.Session
	keys    *KeyMap
	tick    time.Duration
	logger  *log.Logger
	scores  ScoreStore
	best    int
}

// NewLoop creates a loop in PhaseStart drawing on d.
func NewLoop(d Display, opts Options) *Loop {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Loop{
		display: d,
		session: snake.NewSession(opts.Width, opts.Height),
		keys:    NewKeyMap(opts.Bindings),
		tick:    opts.Tick,
		logger:  opts.Logger,
		scores:  opts.Scores,
		best:    -1,
	}
}

// Snapshot returns the state of the loop's session.
func (l *Loop) Snapshot() snake.Snapshot {
	return l.session.Snapshot()
}

// Run executes the phase machine until the display is closed or ctx is done.
// Both count as normal termination and yield a nil error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.step(ctx); err != nil {
			if errors.Is(err, ErrDisplayClosed) || errors.Is(err, context.Canceled) {
				l.logger.Debug("loop stopped", "reason", err)
				return nil
			}
			return err
		}
	}
}

func (l *Loop) step(ctx context.Context) error {
	switch l.session.Phase {
	case snake.PhaseStart:
		return l.runStart(ctx)
	case snake.PhasePlaying:
		return l.runTick(ctx)
	case snake.PhaseEnd:
		return l.runEnd(ctx)
	}
	return nil
}

// runStart shows the title and waits for any key.
func (l *Loop) runStart(ctx context.Context) error {
	if err := l.display.Render(startFrame(l.session)); err != nil {
		return err
	}
	if _, _, err := l.display.PollKey(ctx, nil); err != nil {
		return err
	}

	l.session.Reset()
	l.transition(snake.PhasePlaying)
	return l.display.Render(playingFrame(l.session))
}

// runTick waits up to one tick for a key, applies it, then advances.
func (l *Loop) runTick(ctx context.Context) error {
	key, ok, err := l.display.PollKey(ctx, &l.tick)
	if err != nil {
		return err
	}

	if ok {
		action := l.keys.Classify(key)
		if action == ActionQuitToEnd {
			l.endGame("quit")
			return nil
		}
		if d, isMove := action.Direction(); isMove {
			l.session.ApplyInput(d)
		}
	}

	if l.session.AdvanceTick() == snake.TickLoss {
		l.endGame(l.session.Cause.String())
		return nil
	}
	return l.display.Render(playingFrame(l.session))
}

// runEnd shows the final score and waits for any key.
func (l *Loop) runEnd(ctx context.Context) error {
	if err := l.display.Render(endFrame(l.session, l.best)); err != nil {
		return err
	}
	if _, _, err := l.display.PollKey(ctx, nil); err != nil {
		return err
	}

	l.transition(snake.PhaseStart)
	return nil
}

func (l *Loop) endGame(reason string) {
	snap := l.session.Snapshot()
	l.logger.Info("game over",
		"reason", reason,
		"points", snap.Points,
		"head", l.session.Head,
		"direction", snap.Dir,
	)
	l.recordScore(snap.Points)
	l.transition(snake.PhaseEnd)
}

// recordScore saves the score and refreshes the best score. Failures are
// logged and otherwise ignored.
func (l *Loop) recordScore(points int) {
	if l.scores == nil {
		return
	}
	if points > 0 {
		if _, err := l.scores.SaveScore(GameID, points); err != nil {
			l.logger.Warn("could not save score", "error", err)
		}
	}
	best, err := l.scores.HighScore(GameID)
	if err != nil {
		l.logger.Warn("could not read high score", "error", err)
		return
	}
	l.best = best
}

func (l *Loop) transition(to snake.Phase) {
	l.logger.Debug("phase change", "from", l.session.Phase, "to", to)
	l.session.Phase = to
}
