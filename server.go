package hookline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// VerificationEventType is the handshake type some webhook platforms send
// when the endpoint URL is first configured. The server echoes the
// challenge back and does not dispatch the event.
const VerificationEventType = "url_verification"

// maxBodyBytes caps inbound request bodies.
const maxBodyBytes = 1 << 20

// ack is the fixed acknowledgement written before dispatch begins.
type ack struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Server is the HTTP transport in front of a Router.
//
// It accepts JSON event payloads, acknowledges receipt immediately, and
// dispatches each event on its own goroutine: the sender is never made to
// wait on handler execution. Everything HTTP-shaped lives here; the Router
// only ever sees a parsed Event.
type Server struct {
	cfg     Config
	router  *Router
	logger  *slog.Logger
	httpSrv *http.Server

	// wg tracks in-flight dispatch goroutines for graceful shutdown.
	wg sync.WaitGroup
}

// NewServer creates a Server delivering to router, configured by cfg.
func NewServer(cfg Config, router *Router) *Server {
	if cfg.WebhookPath == "" {
		cfg.WebhookPath = "/webhook"
	}

	s := &Server{
		cfg:    cfg,
		router: router,
		logger: slog.Default(),
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)

	mux.Get("/healthz", handleHealthz)
	mux.Post(cfg.WebhookPath, s.handleWebhook)

	s.httpSrv = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	return s
}

// Handler returns the server's HTTP handler, for tests and for mounting
// under an existing mux.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// ListenAndServe serves until Shutdown is called. It returns nil after a
// clean shutdown.
func (s *Server) ListenAndServe() error {
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting requests, then waits for in-flight dispatches
// to finish. Waiting is bounded by ctx: handlers still running at the
// deadline are abandoned and ctx.Err is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handleWebhook accepts one event: parse, acknowledge, then dispatch.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	evt, err := ParseEvent(body)
	if err != nil {
		s.logger.Warn("rejected webhook payload",
			slog.String("remote", r.RemoteAddr),
			slog.Any("error", err),
		)
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// Endpoint verification handshake: echo and stop, nothing to dispatch.
	if evt.Type == VerificationEventType {
		if ch := gjson.GetBytes(body, "challenge"); ch.Type == gjson.String {
			writeJSON(w, map[string]string{"challenge": ch.String()})
			return
		}
	}

	if evt.EventID == "" {
		evt.EventID = uuid.NewString()
	}

	// Acknowledge before dispatch: the sender gets its response no matter
	// how long the handlers take.
	writeJSON(w, ack{Code: 0, Msg: "success"})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.router.Dispatch(context.WithoutCancel(r.Context()), evt)
	}()
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limited := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer limited.Close()
	return io.ReadAll(limited)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
