package checker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
)

// StatusUnknown is reported when no usable status could be determined.
const StatusUnknown = -1

const (
	userAgent    = "urlshortener-liveness/1.0"
	maxBodyDrain = 4 << 10
)

var errMalformed = errors.New("malformed probe target")

// IsAliveStatusOK reports whether a probe status means the target is alive.
func IsAliveStatusOK(code int) bool {
	return code == http.StatusOK
}

// Probe follows a single URL through permanent redirects and rate limiting.
// A probe belongs to one check; once killed it never issues another request.
type Probe struct {
	client     *http.Client
	logger     *slog.Logger
	maxHops    int
	maxRetries int
	alive      atomic.Bool
}

func newProbe(client *http.Client, logger *slog.Logger, maxHops, maxRetries int) *Probe {
	p := &Probe{
		client:     client,
		logger:     logger,
		maxHops:    maxHops,
		maxRetries: maxRetries,
	}
	p.alive.Store(true)
	return p
}

// Kill marks the probe as not alive. Pending hops and retries return
// StatusUnknown at their next check.
func (p *Probe) Kill() {
	p.alive.Store(false)
}

func (p *Probe) Alive() bool {
	return p.alive.Load()
}

// Status probes rawURL and returns the terminal HTTP status, or StatusUnknown.
func (p *Probe) Status(ctx context.Context, rawURL string) int {
	current := rawURL
	hops, retries := 0, 0

	for {
		if !p.alive.Load() {
			return StatusUnknown
		}

		code, location, err := p.get(ctx, current)
		if err != nil {
			if errors.Is(err, errMalformed) {
				p.logger.Error("link probe failed", "url", current, "error", err)
			} else {
				p.logger.Debug("link unreachable", "url", current, "error", err)
			}
			return StatusUnknown
		}

		switch code {
		case http.StatusMovedPermanently:
			if hops >= p.maxHops {
				p.logger.Warn("redirect hop limit reached", "url", rawURL, "hops", hops)
				return StatusUnknown
			}
			next, err := resolveLocation(current, location)
			if err != nil {
				p.logger.Error("link probe failed", "url", current, "location", location, "error", err)
				return StatusUnknown
			}
			p.logger.Debug("received 301, following redirect", "from", current, "to", next)
			hops++
			current = next
		case http.StatusTooManyRequests:
			if retries >= p.maxRetries {
				p.logger.Warn("rate limit retries exhausted", "url", current, "retries", retries)
				return StatusUnknown
			}
			p.logger.Debug("received 429, retrying", "url", current)
			retries++
		default:
			return code
		}
	}
}

func (p *Probe) get(ctx context.Context, rawURL string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return StatusUnknown, "", errors.Join(errMalformed, err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return StatusUnknown, "", errors.Join(errMalformed, errors.New("unsupported protocol scheme "+req.URL.Scheme))
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return StatusUnknown, "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyDrain))

	return resp.StatusCode, resp.Header.Get("Location"), nil
}

func resolveLocation(current, location string) (string, error) {
	if location == "" {
		return "", errors.Join(errMalformed, errors.New("empty location header"))
	}
	base, err := url.Parse(current)
	if err != nil {
		return "", errors.Join(errMalformed, err)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", errors.Join(errMalformed, err)
	}
	return base.ResolveReference(ref).String(), nil
}
