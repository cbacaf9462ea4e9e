package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/http"
	"time"

	"urlshortener/internal/types"
)

type URLStore interface {
	FindByKey(ctx context.Context, hash string) (*types.ShortURL, error)
	Save(ctx context.Context, s *types.ShortURL) (*types.ShortURL, error)
	Update(ctx context.Context, s *types.ShortURL) (*types.ShortURL, error)
	ListAll(ctx context.Context) ([]types.ShortURL, error)
}

type LinkCache interface {
	Get(ctx context.Context, hash string) (*types.ShortURL, error)
	Set(ctx context.Context, s *types.ShortURL, expiration time.Duration) error
	Delete(ctx context.Context, hash string) error
}

type ClickStore interface {
	SaveClick(ctx context.Context, c types.Click) error
	CountClicks(ctx context.Context, hash string) (int64, error)
}

type SafetyVerifier interface {
	IsSafe(ctx context.Context, url string) (bool, error)
}

type URLChecker interface {
	Check(ctx context.Context, url string) bool
}

type InfoExtractor interface {
	ExtractAll(r *http.Request) types.ClientInfo
	ExtractIP(r *http.Request) string
}
