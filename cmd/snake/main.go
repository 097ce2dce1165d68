// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                - Play on this terminal
//	snake scores         - Show recorded high scores
//	snake serve          - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--backend <name>      - Display backend: tea (default) or tcell
//	--record              - Save finished games to the scores database
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--log-file <path>     - Write logs to a file while playing
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagRecord     bool
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around the board",
	Long: `Snake in your terminal.

Controls:
  Arrows     - Steer
  Q          - End the round
  Any key    - Start / continue from the title and game over screens
  Ctrl+C     - Quit

Difficulty options:
  easy   - 180ms per tick
  normal - 120ms per tick
  hard   - 80ms per tick
  fixed  - Keep the configured tick_ms

Examples:
  snake
  snake --difficulty hard
  snake --backend tcell
  snake --record
  snake --config ./my-snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagBackend, "backend", "", "Display backend: tea or tcell (default from config)")
	pf.BoolVar(&flagRecord, "record", false, "Record finished games in the scores database")
	pf.StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
