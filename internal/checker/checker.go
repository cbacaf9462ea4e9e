// Package checker decides whether a URL is worth shortening: it must be well
// formed and answer 200 within a fixed time budget.
package checker

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"urlshortener/internal/validator"
)

const (
	DefaultTimeout    = 2000 * time.Millisecond
	DefaultMaxHops    = 10
	DefaultMaxRetries = 5
)

type Options struct {
	Timeout    time.Duration
	MaxHops    int
	MaxRetries int
	// Client is used for probes. Its redirect policy is replaced so that
	// redirects are always handled by the probe itself.
	Client *http.Client
}

type Checker struct {
	client     *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	maxHops    int
	maxRetries int
}

func New(logger *slog.Logger, opts Options) *Checker {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxHops <= 0 {
		opts.MaxHops = DefaultMaxHops
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}

	client := &http.Client{}
	if opts.Client != nil {
		c := *opts.Client
		client = &c
	}
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Checker{
		client:     client,
		logger:     logger,
		timeout:    opts.Timeout,
		maxHops:    opts.MaxHops,
		maxRetries: opts.MaxRetries,
	}
}

// NewProbe returns a fresh probe sharing the checker's client and limits.
func (c *Checker) NewProbe() *Probe {
	return newProbe(c.client, c.logger, c.maxHops, c.maxRetries)
}

// Check reports whether rawURL is valid and alive. If the work does not
// finish within the budget the probe is killed and false is returned.
func (c *Checker) Check(ctx context.Context, rawURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	probe := c.NewProbe()
	done := make(chan bool, 1)
	go func() {
		done <- c.run(ctx, probe, rawURL)
	}()

	select {
	case ok := <-done:
		return ok
	case <-ctx.Done():
		probe.Kill()
		c.logger.Warn("link check timed out, try shortening again", "url", rawURL, "timeout", c.timeout)
		return false
	}
}

func (c *Checker) run(ctx context.Context, probe *Probe, rawURL string) bool {
	if !validator.IsValid(rawURL) {
		c.logger.Info("link is not well formed", "url", rawURL)
		return false
	}

	code := probe.Status(ctx, rawURL)
	if !IsAliveStatusOK(code) {
		c.logger.Info("link is not available", "url", rawURL, "status", code)
		return false
	}
	return true
}
