package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const title = "SNAKE"

func scoreText(points int) string {
	return fmt.Sprintf("Score: %d", points)
}

func startFrame(s *snake.Session) Frame {
	return Frame{
		Phase: snake.PhaseStart,
		Grid:  s.Grid.Clone(),
		Score: scoreText(0),
		Overlay: []string{
			title,
			"Press any key to start",
		},
	}
}

func playingFrame(s *snake.Session) Frame {
	return Frame{
		Phase: snake.PhasePlaying,
		Grid:  s.Grid.Clone(),
		Score: scoreText(s.Points),
	}
}

// endFrame shows the final score. best is omitted when negative.
func endFrame(s *snake.Session, best int) Frame {
	overlay := []string{
		"GAME OVER",
		scoreText(s.Points),
	}
	if best >= 0 {
		overlay = append(overlay, fmt.Sprintf("Best: %d", best))
	}
	overlay = append(overlay, "Press any key to restart")

	return Frame{
		Phase:   snake.PhaseEnd,
		Grid:    s.Grid.Clone(),
		Score:   scoreText(s.Points),
		Overlay: overlay,
	}
}
