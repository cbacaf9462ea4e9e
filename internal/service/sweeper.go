package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type SweepReport struct {
	Checked int `json:"checked"`
	Unsafe  int `json:"unsafe"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// Sweeper re-runs the safety check over every stored link. Unsafe links are
// switched to 410 Gone; safe ones back to 307.
type Sweeper struct {
	store    URLStore
	verifier SafetyVerifier
	logger   *slog.Logger
}

func NewSweeper(store URLStore, verifier SafetyVerifier, logger *slog.Logger) *Sweeper {
	return &Sweeper{store: store, verifier: verifier, logger: logger}
}

func (s *Sweeper) Sweep(ctx context.Context) (SweepReport, error) {
	s.logger.Info("Checking if links still safe")

	var report SweepReport
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return report, err
	}

	for i := range all {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		su := &all[i]
		report.Checked++

		safe, err := s.verifier.IsSafe(ctx, su.Target)
		if err != nil {
			s.logger.Warn("safety lookup failed, keeping previous state", "hash", su.Hash, "error", err)
			report.Failed++
			continue
		}

		mode := http.StatusTemporaryRedirect
		if !safe {
			s.logger.Info("URL not safe anymore", "url", su.Target, "hash", su.Hash)
			report.Unsafe++
			mode = http.StatusGone
		}
		if su.Safe == safe && su.Mode == mode {
			continue
		}

		su.Safe = safe
		su.Mode = mode
		if _, err := s.store.Update(ctx, su); err != nil {
			s.logger.Error("failed to update link safety", "hash", su.Hash, "error", err)
			report.Failed++
			continue
		}
		report.Updated++
	}

	return report, nil
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := s.Sweep(ctx)
			if err != nil {
				s.logger.Error("safety sweep failed", "error", err)
				continue
			}
			s.logger.Info("safety sweep finished",
				"checked", report.Checked, "unsafe", report.Unsafe,
				"updated", report.Updated, "failed", report.Failed)
		}
	}
}
