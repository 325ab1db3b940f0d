package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/tnguyen21/funtab/internal/app"
	"github.com/tnguyen21/funtab/internal/config"
	"github.com/tnguyen21/funtab/internal/logging"
)

const hostKeyName = "funtab_host_key"

// Server wraps a wish SSH server that gives every session its own tab
// strip and pages.
type Server struct {
	config config.Config
	logger *log.Logger
	wish   *ssh.Server
}

// New creates a Server configured from cfg.
func New(cfg config.Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	// Surface configuration errors before accepting sessions.
	if _, err := app.New(app.Options{Config: cfg, Logger: logger}); err != nil {
		return nil, err
	}

	srv := &Server{config: cfg, logger: logger}
	s, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf(":%d", cfg.Port)),
		wish.WithHostKeyPath(filepath.Join(cfg.HostKeyDir, hostKeyName)),
		wish.WithPublicKeyAuth(publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			wishlogging.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wish server: %w", err)
	}
	srv.wish = s
	return srv, nil
}

// teaHandler builds a model rendered for the session's terminal, so
// adaptive colors follow each client's background.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	model, err := app.New(app.Options{
		Config:   s.config,
		Renderer: bubbletea.MakeRenderer(sess),
		Logger:   s.logger.With("user", sess.User()),
	})
	if err != nil {
		s.logger.Error("starting session", "user", sess.User(), "err", err)
		wish.Fatalln(sess, err)
		return nil, nil
	}
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.wish.Addr
}

// Start begins listening for SSH connections. It blocks until the server
// is shut down or encounters a fatal error. Returns nil on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting ssh server", "addr", s.wish.Addr)
	if err := s.wish.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("stopping ssh server")
	return s.wish.Shutdown(ctx)
}

// publicKeyHandler accepts all SSH public keys. funtab is meant for
// local/VPS use behind a firewall.
func publicKeyHandler(_ ssh.Context, _ ssh.PublicKey) bool {
	return true
}
