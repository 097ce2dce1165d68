package game

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type poll struct {
	key Key
	ok  bool
}

func press(k Key) poll { return poll{key: k, ok: true} }

var expire = poll{}

func expires(n int) []poll {
	out := make([]poll, n)
	for i := range out {
		out[i] = expire
	}
	return out
}

// scriptDisplay replays polls in order and reports closed once they run out.
type scriptDisplay struct {
	script    []poll
	timeouts  []*time.Duration
	frames    []Frame
	renderErr error
}

func (d *scriptDisplay) PollKey(ctx context.Context, timeout *time.Duration) (Key, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if timeout != nil {
		t := *timeout
		timeout = &t
	}
	d.timeouts = append(d.timeouts, timeout)
	if len(d.script) == 0 {
		return "", false, ErrDisplayClosed
	}
	p := d.script[0]
	d.script = d.script[1:]
	return p.key, p.ok, nil
}

func (d *scriptDisplay) Render(f Frame) error {
	if d.renderErr != nil {
		return d.renderErr
	}
	d.frames = append(d.frames, f)
	return nil
}

func (d *scriptDisplay) last() Frame {
	return d.frames[len(d.frames)-1]
}

type memScores struct {
	saved []int
}

func (m *memScores) SaveScore(_ string, score int) (int64, error) {
	m.saved = append(m.saved, score)
	return int64(len(m.saved)), nil
}

func (m *memScores) HighScore(_ string) (int, error) {
	best := 0
	for _, s := range m.saved {
		best = max(best, s)
	}
	return best, nil
}

func runScript(t *testing.T, d *scriptDisplay, scores ScoreStore) *Loop {
	t.Helper()
	l := NewLoop(d, Options{
		Width:    32,
		Height:   16,
		Bindings: DefaultBindings(),
		Scores:   scores,
	})
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	return l
}

func TestAnyKeyStartsFreshGame(t *testing.T) {
	d := &scriptDisplay{script: []poll{press("x")}}
	l := runScript(t, d, nil)

	snap := l.Snapshot()
	if snap.Phase != snake.PhasePlaying {
		t.Fatalf("Phase = %v, expected playing", snap.Phase)
	}
	if snap.Points != 0 || snap.HeadX != 16 || snap.HeadY != 8 || snap.Dir != snake.DirRight {
		t.Errorf("session not reset: %+v", snap)
	}

	if d.timeouts[0] != nil {
		t.Error("start screen should block without timeout")
	}
	if d.timeouts[1] == nil || *d.timeouts[1] != DefaultTick {
		t.Errorf("playing poll timeout = %v, expected %v", d.timeouts[1], DefaultTick)
	}

	start := d.frames[0]
	if start.Phase != snake.PhaseStart || len(start.Overlay) == 0 || start.Overlay[0] != "SNAKE" {
		t.Errorf("unexpected start frame: %+v", start)
	}
	if d.last().Phase != snake.PhasePlaying || len(d.last().Overlay) != 0 {
		t.Errorf("unexpected playing frame: %+v", d.last())
	}
}

func TestQuitKeyEndsGame(t *testing.T) {
	d := &scriptDisplay{script: []poll{press("x"), expire, press("q")}}
	l := runScript(t, d, nil)

	snap := l.Snapshot()
	if snap.Phase != snake.PhaseEnd {
		t.Fatalf("Phase = %v, expected end", snap.Phase)
	}
	if snap.Points != 1 {
		t.Errorf("Points = %d, expected 1 (quit must not tick)", snap.Points)
	}

	end := d.last()
	if end.Overlay[0] != "GAME OVER" || end.Overlay[1] != "Score: 1" {
		t.Errorf("unexpected end overlay: %q", end.Overlay)
	}
	for _, line := range end.Overlay {
		if strings.HasPrefix(line, "Best") {
			t.Errorf("best score shown without a store: %q", end.Overlay)
		}
	}
	if d.timeouts[len(d.timeouts)-1] != nil {
		t.Error("end screen should block without timeout")
	}
}

func TestRunIntoWallEndsGame(t *testing.T) {
	script := []poll{press("x"), expire, press("left")}
	script = append(script, expires(14)...)
	d := &scriptDisplay{script: script}
	l := runScript(t, d, nil)

	snap := l.Snapshot()
	if snap.Phase != snake.PhaseEnd {
		t.Fatalf("Phase = %v, expected end", snap.Phase)
	}
	if snap.Points != 15 || snap.HeadX != 31 {
		t.Errorf("Points = %d, HeadX = %d, expected 15 and 31", snap.Points, snap.HeadX)
	}
	if snap.Cause != snake.CauseWall {
		t.Errorf("Cause = %v, expected wall", snap.Cause)
	}
	if got := d.last().Overlay[1]; got != "Score: 15" {
		t.Errorf("score line = %q", got)
	}
}

func TestEndKeyReturnsToStartAndRestarts(t *testing.T) {
	d := &scriptDisplay{script: []poll{
		press("x"), expire, expire, press("q"), // first game, 2 points
		press("y"), // END -> START
		press("z"), // START -> PLAYING
	}}
	l := runScript(t, d, nil)

	snap := l.Snapshot()
	if snap.Phase != snake.PhasePlaying {
		t.Fatalf("Phase = %v, expected playing", snap.Phase)
	}
	if snap.Points != 0 || snap.HeadX != 16 {
		t.Errorf("restart did not reset session: %+v", snap)
	}

	var phases []snake.Phase
	for _, f := range d.frames {
		if len(phases) == 0 || phases[len(phases)-1] != f.Phase {
			phases = append(phases, f.Phase)
		}
	}
	want := []snake.Phase{snake.PhaseStart, snake.PhasePlaying, snake.PhaseEnd, snake.PhaseStart, snake.PhasePlaying}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, expected %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases = %v, expected %v", phases, want)
		}
	}
}

func TestUnrecognizedKeysAreIgnored(t *testing.T) {
	d := &scriptDisplay{script: []poll{press("x"), press("z"), press("enter"), press("down")}}
	l := runScript(t, d, nil)

	snap := l.Snapshot()
	if snap.Points != 3 {
		t.Errorf("Points = %d, expected 3", snap.Points)
	}
	if snap.Dir != snake.DirDown || snap.HeadX != 18 || snap.HeadY != 9 {
		t.Errorf("unexpected position: %+v", snap)
	}
}

func TestScoresAreRecorded(t *testing.T) {
	scores := &memScores{saved: []int{10}}
	d := &scriptDisplay{script: append([]poll{press("x")}, append(expires(3), press("q"))...)}
	runScript(t, d, scores)

	if len(scores.saved) != 2 || scores.saved[1] != 3 {
		t.Fatalf("saved = %v, expected [10 3]", scores.saved)
	}
	end := d.last()
	found := false
	for _, line := range end.Overlay {
		if line == "Best: 10" {
			found = true
		}
	}
	if !found {
		t.Errorf("end overlay missing best score: %q", end.Overlay)
	}
}

func TestZeroScoreIsNotSaved(t *testing.T) {
	scores := &memScores{}
	d := &scriptDisplay{script: []poll{press("x"), press("q")}}
	runScript(t, d, scores)

	if len(scores.saved) != 0 {
		t.Errorf("saved = %v, expected nothing", scores.saved)
	}
}

func TestCanceledContextStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &scriptDisplay{script: []poll{press("x")}}
	l := NewLoop(d, Options{Width: 32, Height: 16, Bindings: DefaultBindings()})
	if err := l.Run(ctx); err != nil {
		t.Errorf("Run() = %v, expected nil", err)
	}
	if l.Snapshot().Phase != snake.PhaseStart {
		t.Error("loop should not leave start after cancellation")
	}
}

func TestRenderErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	d := &scriptDisplay{renderErr: boom}
	l := NewLoop(d, Options{Width: 32, Height: 16, Bindings: DefaultBindings()})

	if err := l.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected %v", err, boom)
	}
}
