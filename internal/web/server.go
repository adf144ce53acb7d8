package web

import (
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "go.uber.org/zap"

    "github.com/jaminalder/tictactoe-history/internal/app"
)

// Option configures the handler returned by NewServer.
type Option func(*handlers)

// WithLogger sets the request and error logger.
func WithLogger(l *zap.SugaredLogger) Option {
    return func(h *handlers) {
        if l != nil {
            h.log = l
        }
    }
}

// WithCookieTTL sets how long the browser remembers its game.
func WithCookieTTL(ttl time.Duration) Option {
    return func(h *handlers) { h.ttl = ttl }
}

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, opts ...Option) http.Handler {
    h := &handlers{svc: s, tpl: loadTemplates(), log: zap.NewNop().Sugar(), ttl: 30 * time.Minute}
    for _, opt := range opts {
        opt(h)
    }
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(middleware.Recoverer)
    r.Use(requestLogger(h.log))
    r.Get("/", h.index)
    r.Get("/healthz", h.health)
    r.Post("/game", h.create)
    r.Route("/game/{id}", func(r chi.Router) {
        r.Get("/", h.view)
        r.Post("/cells/{index}", h.click)
        r.Post("/moves/{move}", h.jump)
        r.Post("/sort", h.sort)
        r.Post("/restart", h.restart)
    })
    return r
}

func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
            start := time.Now()
            next.ServeHTTP(ww, r)
            log.Infow("request",
                "method", r.Method,
                "path", r.URL.Path,
                "status", ww.Status(),
                "bytes", ww.BytesWritten(),
                "duration", time.Since(start),
                "request_id", middleware.GetReqID(r.Context()),
            )
        })
    }
}
