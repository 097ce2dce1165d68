package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/surface"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent games. Zero means unlimited.
	MaxSessions int

	// Game configures the loop each session runs. Its Logger is replaced
	// with a per-session logger.
	Game game.Options

	Glyphs surface.Glyphs
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Glyphs:      surface.DefaultGlyphs(),
	}
}

// SSHServer serves one snake game per SSH session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	painter  *surface.Painter
	sessions *sessionRegistry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server. A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	srv := &SSHServer{
		config:   cfg,
		painter:  surface.NewPainter(cfg.Glyphs),
		sessions: newSessionRegistry(cfg.MaxSessions),
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler starts a game loop for the session and returns the model that
// displays it. Sessions without a PTY, or with a PTY smaller than the board,
// are refused before any display is created.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())

	pty, _, ok := sess.Pty()
	if !ok {
		logger.Warn("no PTY requested")
		wish.Fatalln(sess, "snake needs an interactive terminal; try ssh -t")
		return nil, nil
	}

	if err := surface.CheckSize(s.config.Game.Width, s.config.Game.Height, pty.Window.Width, pty.Window.Height); err != nil {
		logger.Warn("session refused", "error", err)
		wish.Fatalln(sess, err)
		return nil, nil
	}

	d := NewDisplay(s.painter)
	id := sessionID(fmt.Sprintf("%s-%d", sess.User(), time.Now().UnixNano()))
	if err := s.sessions.register(id, d); err != nil {
		logger.Warn("session refused", "error", err, "sessions", s.sessions.count())
		wish.Fatalln(sess, err)
		return nil, nil
	}
	logger.Debug("game started", "session", id, "sessions", s.sessions.count())

	opts := s.config.Game
	opts.Logger = logger
	loop := game.NewLoop(d, opts)

	go func() {
		defer s.sessions.unregister(id)
		defer d.Close()
		if err := loop.Run(sess.Context()); err != nil {
			logger.Error("game loop failed", "error", err)
		}
	}()

	return d.Model(), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, failed := <-errc:
		if failed {
			return fmt.Errorf("tui: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown ends every running game and gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.sessions.closeAll()
	return s.server.Shutdown(ctx)
}

// Sessions returns the number of games in progress.
func (s *SSHServer) Sessions() int {
	return s.sessions.count()
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
