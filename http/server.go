package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/documind"
	"github.com/rs/cors"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 10 * time.Second

// Banner is the plain-text body served at the root path.
const Banner = "Documind API is running"

// Server is the JSON API. Set the service fields before calling Open.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Bind address, e.g. ":3000".
	Addr string

	URLProcessor  documind.URLProcessor
	Authenticator documind.Authenticator
	Tokens        documind.TokenService
	Users         documind.UserService
	Documents     documind.DocumentService
	Converter     documind.Converter

	Logger *slog.Logger
}

// NewServer returns a Server with a discarding logger.
func NewServer() *Server {
	return &Server{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Handler returns the routed handler wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api", s.handleAPIIndex)

	mux.HandleFunc("POST /api/process-url", s.handleProcessURL)
	mux.HandleFunc("GET /api/process-url", s.handleProcessURLMethod)

	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("POST /api/save-document", s.requireAuth(s.handleSaveDocument))
	mux.HandleFunc("GET /api/documents", s.requireAuth(s.handleListDocuments))
	mux.HandleFunc("GET /api/documents/{id}", s.requireAuth(s.handleGetDocument))
	mux.HandleFunc("DELETE /api/documents/{id}", s.requireAuth(s.handleDeleteDocument))
	mux.HandleFunc("GET /api/documents/{id}/markdown", s.requireAuth(s.handleDocumentMarkdown))

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	})

	return s.logRequests(cors.AllowAll().Handler(mux))
}

// Open binds the listener. Serve must be called to accept connections.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Serve accepts connections until Shutdown is called.
func (s *Server) Serve() error {
	if s.server == nil {
		return errors.New("server not open")
	}
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for active requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	addr := s.ln.Addr().(*net.TCPAddr)
	host := addr.IP.String()
	if addr.IP.IsUnspecified() {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(addr.Port))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(Banner))
}

func (s *Server) handleAPIIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
