// Package server implements the static file server task handler.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 5 * time.Second

var (
	_ ports.TaskHandler = (*Server)(nil)
	_ io.Closer         = (*Server)(nil)
)

// Server serves a directory over HTTP from the moment its task runs until
// the run ends and the runner closes it.
type Server struct {
	logger ports.Logger

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewServer creates a new Server.
func NewServer(logger ports.Logger) *Server {
	return &Server{logger: logger}
}

// Plugin returns domain.PluginServer.
func (s *Server) Plugin() domain.PluginKind {
	return domain.PluginServer
}

// Run binds the port and starts serving in the background. The port is
// bound when Run returns. A second run while serving is a no-op.
func (s *Server) Run(_ context.Context, task domain.TaskDefinition, out io.Writer) error {
	opts, err := domain.OptionsFor[domain.ServerOptions](task)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		_, _ = fmt.Fprintf(out, "Web server already running on %s\n", s.url())
		return nil
	}

	addr := net.JoinHostPort(opts.Hostname, strconv.Itoa(opts.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerStartFailed.Error()), "addr", addr)
	}

	router := mux.NewRouter()
	router.Use(s.logRequests)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.Base)))

	s.listener = listener
	s.done = make(chan struct{})
	s.srv = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func(srv *http.Server, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(zerr.Wrap(err, "static server stopped"))
		}
	}(s.srv, s.done)

	_, _ = fmt.Fprintf(out, "Started web server on %s\n", s.url())
	return nil
}

// Addr returns the bound address, or "" when not serving.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) url() string {
	port := s.listener.Addr().(*net.TCPAddr).Port
	return "http://localhost:" + strconv.Itoa(port)
}

// Close shuts the server down, waiting for in-flight requests.
func (s *Server) Close() error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.srv, s.listener, s.done = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	<-done
	return err
}

// logRequests logs one line per request with the response status.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info(fmt.Sprintf("%s %s %d", r.Method, r.URL.Path, rec.status))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
