package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/shapekit/internal/scene"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.shapekit/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// ScenePath and SceneName select the scene each session inspects.
	ScenePath string
	SceneName string

	// Logger receives session events. A default stderr logger is used when nil.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		SceneName:   scene.DefaultName,
	}
}

// SSHServer serves the inspector over SSH with Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration. The
// scene is loaded once up front so a bad file fails at startup.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "shapekit-ssh",
		})
	}

	if _, err := scene.Load(cfg.ScenePath, cfg.SceneName); err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve host key path: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".shapekit", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("create host key directory: %w", err)
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
		return nil, fmt.Errorf("create ssh server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler gives each session its own copy of the scene.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sess.Pty(); !ok {
		s.logger.Warn("rejecting session without a PTY", "user", sess.User())
		return nil, nil
	}

	sc, err := scene.Load(s.config.ScenePath, s.config.SceneName)
	if err != nil {
		s.logger.Error("load scene", "user", sess.User(), "error", err)
		return nil, nil
	}

	return NewModel(sc), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware records when each session opens and how long it lasted.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("inspector opened", "user", sess.User(), "remote", remote)

		next(sess)

		s.logger.Info("inspector closed",
			"user", sess.User(),
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down. A listener
// failure is returned instead of waiting for a signal.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address, "scene", s.config.SceneName)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting sessions and waits up to shutdownTimeout for
// open ones to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
