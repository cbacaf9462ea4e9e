package service

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"urlshortener/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleRecord() *types.ShortURL {
	exp := date(2099, 1, 1)
	return &types.ShortURL{
		Hash:      "abc123",
		Target:    "http://example.com/",
		URI:       "http://localhost:8080/abc123",
		Created:   date(2023, 12, 1),
		Owner:     "owner-1",
		Mode:      http.StatusTemporaryRedirect,
		Safe:      true,
		ExpiresAt: &exp,
	}
}

var visitor = types.ClientInfo{
	Browser:  "Firefox",
	Country:  "ES",
	IP:       "203.0.113.7",
	OS:       "Linux",
	Referrer: "https://news.example/",
}
