// Package server boots the enroll app: it connects and migrates the
// database, wires the store, handlers, middleware stack and router together,
// and serves HTTP until the process is signalled to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opencourse/enroll/http/handler"
	"github.com/opencourse/enroll/http/middleware"
	"github.com/opencourse/enroll/http/resp"
	"github.com/opencourse/enroll/http/router"
	"github.com/opencourse/enroll/logger"
	"github.com/opencourse/enroll/postgres"
)

// Server is the assembled enroll app.
type Server struct {
	config *Config
	logger logger.Logger
	srv    *http.Server
}

// New constructs a Server from config, running migrations in the process.
func New(config *Config) (*Server, error) {
	if err := config.Env.Valid(); err != nil {
		return nil, fmt.Errorf("%w: ENVIRONMENT %q", err, config.Env)
	}

	l := logger.New(logger.WithEnv(config.Env.String()))

	gormDB, err := postgres.Connect(config.DB, postgres.Migrations(), config.Env)
	if err != nil {
		return nil, err
	}

	store := postgres.NewStore(postgres.NewDB(gormDB))
	responder := resp.NewResponder(resp.WithLogger(l), resp.WithRootUrl(config.BaseURL))
	h := handler.New(store, responder)

	rt := router.New(config.Env.String())
	rt.OnEveryRequest(
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
		middleware.CurrentUser(store.FindUserByName),
	)
	rt.HandleRoutes(h.Routes())
	rt.ProtectedRoutes(h.ProtectedRoutes())
	rt.HandleNotFound(h.NotFound)

	return &Server{
		config: config,
		logger: l,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Port),
			Handler:           rt,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves HTTP until SIGINT or SIGTERM arrives, then drains in-flight
// requests for up to the configured shutdown timeout before returning.
func (s *Server) Run() error {
	errC := make(chan error, 1)
	go func() {
		s.logger.Info(fmt.Sprintf("listening on %s", s.srv.Addr), nil)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	select {
	case err := <-errC:
		return err
	case sig := <-stop:
		s.logger.Info(fmt.Sprintf("received %s, shutting down", sig), nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	return s.srv.Shutdown(ctx)
}
