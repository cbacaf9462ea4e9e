package types

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("short url not found")

type ShortURL struct {
	Hash      string     `json:"hash" db:"hash"`
	Target    string     `json:"target" db:"target"`
	URI       string     `json:"uri" db:"uri"`
	Sponsor   string     `json:"sponsor,omitempty" db:"sponsor"`
	Created   time.Time  `json:"created" db:"created"`
	Owner     string     `json:"owner" db:"owner"`
	Mode      int        `json:"mode" db:"mode"`
	Safe      bool       `json:"safe" db:"safe"`
	IP        string     `json:"ip" db:"ip"`
	Country   string     `json:"country,omitempty" db:"country"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
}

// Expired reports whether now is at or after the expiration instant.
// Records without an expiration never expire.
func (s *ShortURL) Expired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return !now.Before(*s.ExpiresAt)
}
