package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"urlshortener/internal/types"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type Server struct {
	port      string
	logger    *slog.Logger
	shortener *Shortener
	resolver  *Resolver
	sweeper   *Sweeper
	checker   URLChecker
	verifier  SafetyVerifier
	store     URLStore
	clicks    ClickStore
	info      InfoExtractor
	location  *time.Location
	now       func() time.Time
}

type ServerDeps struct {
	Shortener *Shortener
	Resolver  *Resolver
	Sweeper   *Sweeper
	Checker   URLChecker
	Verifier  SafetyVerifier
	Store     URLStore
	Clicks    ClickStore
	Info      InfoExtractor
	// Location is used to interpret expiration dates. Defaults to UTC.
	Location *time.Location
}

func NewServer(port string, deps ServerDeps, logger *slog.Logger) *Server {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Server{
		port:      port,
		logger:    logger,
		shortener: deps.Shortener,
		resolver:  deps.Resolver,
		sweeper:   deps.Sweeper,
		checker:   deps.Checker,
		verifier:  deps.Verifier,
		store:     deps.Store,
		clicks:    deps.Clicks,
		info:      deps.Info,
		location:  loc,
		now:       time.Now,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{code}", s.handlerRedirect)
	mux.HandleFunc("GET /exp.html", s.handlerExpired)
	mux.HandleFunc("POST /api/urls", s.handlerShorten)
	mux.HandleFunc("POST /api/verify", s.handlerVerify)
	mux.HandleFunc("POST /api/safe", s.handlerSafe)
	mux.HandleFunc("GET /api/test", s.handlerSweep)
	mux.HandleFunc("GET /api/urls/{code}/qr", s.handlerQR)
	mux.HandleFunc("GET /api/urls/{code}/clicks", s.handlerClicks)
	return mux
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() { errChan <- srv.ListenAndServe() }()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handlerRedirect(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	d, err := s.resolver.Resolve(r.Context(), code, s.info.ExtractAll(r), s.now())
	if err != nil {
		s.logger.Error("Database error", "hash", code, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch d.Kind {
	case DecisionNotFound:
		http.NotFound(w, r)
	default:
		w.Header().Set("Location", d.Location)
		w.WriteHeader(d.StatusCode)
	}
}

func (s *Server) handlerExpired(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "link expired", http.StatusGone)
}

func (s *Server) handlerShorten(w http.ResponseWriter, r *http.Request) {
	target := r.FormValue("url")
	// Absent date and time fields mean the link never expires.
	expiresAt, err := ParseExpiration(r.FormValue("date"), r.FormValue("time"), s.location)
	if err != nil {
		s.logger.Info("bad expiration", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	su, err := s.shortener.Shorten(r.Context(), ShortenRequest{
		URL:       target,
		Sponsor:   r.FormValue("sponsor"),
		IP:        s.info.ExtractIP(r),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		if !errors.Is(err, ErrURLNotValid) && !errors.Is(err, ErrURLUnsafe) {
			s.logger.Error("failed to create short link", "url", target, "error", err)
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Location", su.URI)
	writeJSON(w, http.StatusCreated, su)
}

func (s *Server) handlerVerify(w http.ResponseWriter, r *http.Request) {
	writeVerdict(w, s.checker.Check(r.Context(), r.FormValue("url")))
}

func (s *Server) handlerSafe(w http.ResponseWriter, r *http.Request) {
	target := r.FormValue("url")
	safe, err := s.verifier.IsSafe(r.Context(), target)
	if err != nil {
		s.logger.Warn("safety lookup failed", "url", target, "error", err)
	}
	writeVerdict(w, err == nil && safe)
}

func (s *Server) handlerSweep(w http.ResponseWriter, r *http.Request) {
	report, err := s.sweeper.Sweep(r.Context())
	if err != nil {
		s.logger.Error("safety sweep failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlerQR(w http.ResponseWriter, r *http.Request) {
	su, ok := s.lookup(w, r)
	if !ok {
		return
	}
	png, err := qrcode.Encode(su.URI, qrcode.Medium, qrSize)
	if err != nil {
		s.logger.Error("failed to render qr code", "hash", su.Hash, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) handlerClicks(w http.ResponseWriter, r *http.Request) {
	su, ok := s.lookup(w, r)
	if !ok {
		return
	}
	n, err := s.clicks.CountClicks(r.Context(), su.Hash)
	if err != nil {
		s.logger.Error("failed to count clicks", "hash", su.Hash, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hash": su.Hash, "clicks": n})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*types.ShortURL, bool) {
	code := r.PathValue("code")
	su, err := s.store.FindByKey(r.Context(), code)
	if errors.Is(err, types.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		s.logger.Error("Database error", "hash", code, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	return su, true
}

func writeVerdict(w http.ResponseWriter, ok bool) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if ok {
		_, _ = w.Write([]byte("SAFE"))
		return
	}
	_, _ = w.Write([]byte("UNSAFE"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
