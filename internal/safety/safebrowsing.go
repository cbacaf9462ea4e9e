// Package safety asks an external threat database whether a target URL is
// known to be malicious.
package safety

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultEndpoint = "https://safebrowsing.googleapis.com/v4/threatMatches:find"
	clientID        = "urlshortener"
	clientVersion   = "1.0.0"
)

type AllowAll struct{}

func (AllowAll) IsSafe(context.Context, string) (bool, error) {
	return true, nil
}

// GoogleSafeBrowsing is a Safe Browsing v4 Lookup API client.
type GoogleSafeBrowsing struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewGoogleSafeBrowsing(apiKey string, logger *slog.Logger) *GoogleSafeBrowsing {
	return &GoogleSafeBrowsing{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   logger,
	}
}

// WithEndpoint points the client at another lookup URL.
func (g *GoogleSafeBrowsing) WithEndpoint(endpoint string) *GoogleSafeBrowsing {
	g.endpoint = endpoint
	return g
}

type client struct {
	ClientID      string `json:"clientId"`
	ClientVersion string `json:"clientVersion"`
}

type threatEntry struct {
	URL string `json:"url"`
}

type threatInfo struct {
	ThreatTypes      []string      `json:"threatTypes"`
	PlatformTypes    []string      `json:"platformTypes"`
	ThreatEntryTypes []string      `json:"threatEntryTypes"`
	ThreatEntries    []threatEntry `json:"threatEntries"`
}

type findRequest struct {
	Client     client     `json:"client"`
	ThreatInfo threatInfo `json:"threatInfo"`
}

type findResponse struct {
	Matches []struct {
		ThreatType string `json:"threatType"`
	} `json:"matches"`
}

func (g *GoogleSafeBrowsing) IsSafe(ctx context.Context, target string) (bool, error) {
	body, err := json.Marshal(findRequest{
		Client: client{ClientID: clientID, ClientVersion: clientVersion},
		ThreatInfo: threatInfo{
			ThreatTypes:      []string{"MALWARE", "SOCIAL_ENGINEERING", "UNWANTED_SOFTWARE", "POTENTIALLY_HARMFUL_APPLICATION"},
			PlatformTypes:    []string{"ANY_PLATFORM"},
			ThreatEntryTypes: []string{"URL"},
			ThreatEntries:    []threatEntry{{URL: target}},
		},
	})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"?key="+g.apiKey, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("safe browsing lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("safe browsing lookup: status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var found findResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return false, fmt.Errorf("safe browsing lookup: decode: %w", err)
	}
	if len(found.Matches) > 0 {
		g.logger.Info("url flagged by safe browsing", "url", target, "threat", found.Matches[0].ThreatType)
		return false, nil
	}
	return true, nil
}
