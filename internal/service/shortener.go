package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"urlshortener/internal/types"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

var (
	ErrURLNotValid = errors.New("url is not valid or not reachable")
	ErrURLUnsafe   = errors.New("url is not safe")
)

type ShortenRequest struct {
	URL     string
	Sponsor string
	// Owner defaults to a random UUID.
	Owner     string
	IP        string
	ExpiresAt *time.Time
}

type Shortener struct {
	store    URLStore
	checker  URLChecker
	verifier SafetyVerifier
	baseURL  string
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

func NewShortener(store URLStore, checker URLChecker, verifier SafetyVerifier, baseURL string, logger *slog.Logger) *Shortener {
	return &Shortener{
		store:    store,
		checker:  checker,
		verifier: verifier,
		baseURL:  baseURL,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Shorten validates, probes and safety-checks req.URL, then stores a new
// short URL for it.
func (s *Shortener) Shorten(ctx context.Context, req ShortenRequest) (*types.ShortURL, error) {
	if !s.checker.Check(ctx, req.URL) {
		return nil, ErrURLNotValid
	}

	safe, err := s.verifier.IsSafe(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("safety check: %w", err)
	}
	if !safe {
		s.logger.Info("refusing to shorten unsafe url", "url", req.URL)
		return nil, ErrURLUnsafe
	}

	owner := req.Owner
	if owner == "" {
		owner = s.newID()
	}
	hash := shortHash(s.newID())

	su := &types.ShortURL{
		Hash:      hash,
		Target:    req.URL,
		URI:       s.ShortURI(hash),
		Sponsor:   req.Sponsor,
		Created:   s.now(),
		Owner:     owner,
		Mode:      http.StatusTemporaryRedirect,
		Safe:      true,
		IP:        req.IP,
		ExpiresAt: req.ExpiresAt,
	}

	_, err = s.store.FindByKey(ctx, hash)
	switch {
	case err == nil:
		if _, err := s.store.Update(ctx, su); err != nil {
			return nil, err
		}
		return su, nil
	case errors.Is(err, types.ErrNotFound):
		saved, err := s.store.Save(ctx, su)
		if err != nil {
			return nil, err
		}
		s.logger.Info("short url created", "hash", saved.Hash, "target", saved.Target)
		return saved, nil
	default:
		return nil, err
	}
}

func (s *Shortener) ShortURI(hash string) string {
	return s.baseURL + "/" + hash
}

// shortHash keeps 32 bits of the xxhash of seed as 8 hex characters.
func shortHash(seed string) string {
	return fmt.Sprintf("%08x", uint32(xxhash.Sum64String(seed)))
}

// ParseExpiration combines a yyyy-mm-dd date and an HH:MM time of day in loc.
// An empty date means the link never expires; an empty time means midnight.
func ParseExpiration(date, clock string, loc *time.Location) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid expiration %q %q: %w", date, clock, err)
	}
	return &t, nil
}
