package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"urlshortener/internal/types"
)

type DecisionKind int

const (
	DecisionNotFound DecisionKind = iota
	DecisionRedirect
	DecisionExpired
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionRedirect:
		return "redirect"
	case DecisionExpired:
		return "expired"
	default:
		return "not_found"
	}
}

type Decision struct {
	Kind       DecisionKind
	Location   string
	StatusCode int
}

// Resolver turns a short key into a redirect decision and records the click.
type Resolver struct {
	store           URLStore
	clicks          ClickStore
	expiredLocation string
	logger          *slog.Logger
}

func NewResolver(store URLStore, clicks ClickStore, expiredLocation string, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:           store,
		clicks:          clicks,
		expiredLocation: expiredLocation,
		logger:          logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, hash string, client types.ClientInfo, now time.Time) (Decision, error) {
	su, err := r.store.FindByKey(ctx, hash)
	if errors.Is(err, types.ErrNotFound) {
		return Decision{Kind: DecisionNotFound}, nil
	}
	if err != nil {
		return Decision{}, err
	}

	d := r.decide(su, now)
	if d.Kind == DecisionExpired {
		r.logger.Info("Requested link has expired", "hash", hash, "status", d.StatusCode)
		return d, nil
	}

	click := types.NewClick(hash, client, now)
	if err := r.clicks.SaveClick(ctx, click); err != nil {
		r.logger.Warn("click was not saved", "hash", hash, "error", err)
	} else {
		r.logger.Debug("click saved", "hash", hash, "browser", click.Browser, "os", click.OS, "country", click.Country)
	}
	return d, nil
}

func (r *Resolver) decide(su *types.ShortURL, now time.Time) Decision {
	if su.Expired(now) {
		return Decision{Kind: DecisionExpired, Location: r.expiredLocation, StatusCode: su.Mode}
	}
	return Decision{Kind: DecisionRedirect, Location: su.Target, StatusCode: su.Mode}
}
