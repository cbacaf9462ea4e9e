// Package clientinfo pulls the visitor details recorded with every click out
// of an HTTP request.
package clientinfo

import (
	"net"
	"net/http"
	"strings"

	"urlshortener/internal/types"

	"github.com/mssola/useragent"
	"github.com/oschwald/geoip2-golang"
)

const unknown = "Unknown"

type countryLookup interface {
	Country(ip net.IP) (*geoip2.Country, error)
}

type Extractor struct {
	geo countryLookup
}

// New returns an extractor. A nil geo reader disables country lookup.
func New(geo *geoip2.Reader) *Extractor {
	if geo == nil {
		return &Extractor{}
	}
	return &Extractor{geo: geo}
}

// Open loads a GeoLite2 country or city database from path.
func Open(path string) (*geoip2.Reader, error) {
	return geoip2.Open(path)
}

func (e *Extractor) ExtractAll(r *http.Request) types.ClientInfo {
	ua := useragent.New(r.UserAgent())
	ip := e.ExtractIP(r)
	return types.ClientInfo{
		Browser:  browser(ua),
		Country:  e.country(ip),
		IP:       ip,
		OS:       system(ua),
		Referrer: r.Referer(),
	}
}

func (e *Extractor) ExtractIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (e *Extractor) country(ip string) string {
	if e.geo == nil {
		return ""
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}
	record, err := e.geo.Country(parsed)
	if err != nil {
		return ""
	}
	return record.Country.IsoCode
}

func browser(ua *useragent.UserAgent) string {
	if ua.Bot() {
		return "Bot"
	}
	name, _ := ua.Browser()
	if name == "" {
		return unknown
	}
	return name
}

// system folds the parsed OS name into one label per family.
func system(ua *useragent.UserAgent) string {
	switch ua.Platform() {
	case "iPhone", "iPad", "iPod":
		return "iOS"
	}
	name := ua.OSInfo().Name
	switch {
	case name == "":
		return unknown
	case strings.HasPrefix(name, "Windows"):
		return "Windows"
	case name == "Mac OS X":
		return "macOS"
	case strings.HasPrefix(name, "CrOS"):
		return "Chrome OS"
	}
	return name
}
