// Package httpapi exposes the REST surface consumed by the web client:
// registration, login, session introspection, and the video catalog.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reelvault/reelvault/internal/logging"
	"github.com/reelvault/reelvault/internal/server/auth"
	"github.com/reelvault/reelvault/internal/server/services"
	"github.com/reelvault/reelvault/internal/server/session"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	authn    *auth.Authenticator
	sessions *session.Manager
	accounts *services.AccountService
	videos   *services.VideoService
}

func NewServer(address string, logger logging.Logger, authn *auth.Authenticator, sessions *session.Manager, accounts *services.AccountService, videos *services.VideoService) *Server {
	return &Server{
		address:  address,
		logger:   logger.With("module", "httpapi"),
		authn:    authn,
		sessions: sessions,
		accounts: accounts,
		videos:   videos,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.requestLogger(), s.resolveSession())

	api := r.Group("/api")
	{
		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)
		api.GET("/auth/session", s.requireIdentity(), s.handleSession)
		api.POST("/auth/password", s.requireIdentity(), s.handleChangePassword)

		api.GET("/video", s.handleListVideos)
		api.GET("/video/:id", s.handleGetVideo)
		api.POST("/video", s.requireIdentity(), s.handleCreateVideo)
		api.DELETE("/video/:id", s.requireIdentity(), s.handleDeleteVideo)
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
