// Package validator performs the syntactic check applied to every URL before
// it is probed or stored.
package validator

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValid reports whether raw is an absolute http or https URL with a host.
func IsValid(raw string) bool {
	if strings.TrimSpace(raw) != raw {
		return false
	}
	if err := validate.Var(raw, "required,http_url"); err != nil {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}
