package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"urlshortener/internal/service/mocks"
	"urlshortener/internal/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverMocks struct {
	store    *mocks.MockURLStore
	clicks   *mocks.MockClickStore
	checker  *mocks.MockURLChecker
	verifier *mocks.MockSafetyVerifier
	info     *mocks.MockInfoExtractor
}

func newTestServer(t *testing.T, now time.Time) (http.Handler, serverMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serverMocks{
		store:    mocks.NewMockURLStore(ctrl),
		clicks:   mocks.NewMockClickStore(ctrl),
		checker:  mocks.NewMockURLChecker(ctrl),
		verifier: mocks.NewMockSafetyVerifier(ctrl),
		info:     mocks.NewMockInfoExtractor(ctrl),
	}
	logger := testLogger()
	base := "http://localhost:8080"
	srv := NewServer("8080", ServerDeps{
		Shortener: NewShortener(m.store, m.checker, m.verifier, base, logger),
		Resolver:  NewResolver(m.store, m.clicks, base+"/exp.html", logger),
		Sweeper:   NewSweeper(m.store, m.verifier, logger),
		Checker:   m.checker,
		Verifier:  m.verifier,
		Store:     m.store,
		Clicks:    m.clicks,
		Info:      m.info,
	}, logger)
	srv.now = func() time.Time { return now }
	return srv.Handler(), m
}

func form(values url.Values) *bytes.Buffer {
	return bytes.NewBufferString(values.Encode())
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, form(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRedirect(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.info.EXPECT().ExtractAll(gomock.Any()).Return(visitor)
	m.store.EXPECT().FindByKey(gomock.Any(), "abc123").Return(sampleRecord(), nil)
	m.clicks.EXPECT().SaveClick(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abc123", http.NoBody))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "http://example.com/", w.Header().Get("Location"))
}

func TestRedirectExpired(t *testing.T) {
	h, m := newTestServer(t, date(2100, 1, 1))

	m.info.EXPECT().ExtractAll(gomock.Any()).Return(visitor)
	m.store.EXPECT().FindByKey(gomock.Any(), "abc123").Return(sampleRecord(), nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abc123", http.NoBody))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "http://localhost:8080/exp.html", w.Header().Get("Location"))
}

func TestRedirectNotFound(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.info.EXPECT().ExtractAll(gomock.Any()).Return(visitor)
	m.store.EXPECT().FindByKey(gomock.Any(), "missing").Return(nil, types.ErrNotFound)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRedirectStoreError(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.info.EXPECT().ExtractAll(gomock.Any()).Return(visitor)
	m.store.EXPECT().FindByKey(gomock.Any(), "abc123").Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abc123", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExpiredPage(t *testing.T) {
	h, _ := newTestServer(t, date(2024, 1, 1))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exp.html", http.NoBody))

	assert.Equal(t, http.StatusGone, w.Code)
}

func TestShortenEndpoint(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.info.EXPECT().ExtractIP(gomock.Any()).Return("203.0.113.7")
	m.checker.EXPECT().Check(gomock.Any(), "http://example.com/").Return(true)
	m.verifier.EXPECT().IsSafe(gomock.Any(), "http://example.com/").Return(true, nil)
	m.store.EXPECT().FindByKey(gomock.Any(), gomock.Any()).Return(nil, types.ErrNotFound)
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, su *types.ShortURL) (*types.ShortURL, error) { return su, nil })

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/urls", url.Values{
		"url":     {"http://example.com/"},
		"date":    {"2099-01-01"},
		"time":    {"00:00"},
		"sponsor": {"acme"},
	}))

	require.Equal(t, http.StatusCreated, w.Code)

	var su types.ShortURL
	require.NoError(t, json.NewDecoder(w.Body).Decode(&su))
	assert.Equal(t, "http://example.com/", su.Target)
	assert.Equal(t, "acme", su.Sponsor)
	assert.Equal(t, "203.0.113.7", su.IP)
	assert.Equal(t, su.URI, w.Header().Get("Location"))
	require.NotNil(t, su.ExpiresAt)
	assert.True(t, date(2099, 1, 1).Equal(*su.ExpiresAt))
}

func TestShortenEndpointWithoutExpiration(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.info.EXPECT().ExtractIP(gomock.Any()).Return("203.0.113.7")
	m.checker.EXPECT().Check(gomock.Any(), "http://example.com/").Return(true)
	m.verifier.EXPECT().IsSafe(gomock.Any(), "http://example.com/").Return(true, nil)
	m.store.EXPECT().FindByKey(gomock.Any(), gomock.Any()).Return(nil, types.ErrNotFound)
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, su *types.ShortURL) (*types.ShortURL, error) { return su, nil })

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/urls", url.Values{"url": {"http://example.com/"}}))

	require.Equal(t, http.StatusCreated, w.Code)

	var su types.ShortURL
	require.NoError(t, json.NewDecoder(w.Body).Decode(&su))
	assert.Nil(t, su.ExpiresAt)
}

func TestShortenEndpointRejects(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.info.EXPECT().ExtractIP(gomock.Any()).Return("203.0.113.7")
	m.checker.EXPECT().Check(gomock.Any(), "http://down.example/").Return(false)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/urls", url.Values{"url": {"http://down.example/"}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShortenEndpointBadDate(t *testing.T) {
	h, _ := newTestServer(t, date(2024, 1, 1))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/urls", url.Values{"url": {"http://example.com/"}, "date": {"tomorrow"}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyEndpoint(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.checker.EXPECT().Check(gomock.Any(), "http://example.com/").Return(true)
	m.checker.EXPECT().Check(gomock.Any(), "http://down.example/").Return(false)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/verify", url.Values{"url": {"http://example.com/"}}))
	assert.Equal(t, "SAFE", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/verify", url.Values{"url": {"http://down.example/"}}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "UNSAFE", w.Body.String())
}

func TestSafeEndpoint(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.verifier.EXPECT().IsSafe(gomock.Any(), "http://example.com/").Return(true, nil)
	m.verifier.EXPECT().IsSafe(gomock.Any(), "http://err.example/").Return(true, errors.New("quota"))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/safe", url.Values{"url": {"http://example.com/"}}))
	assert.Equal(t, "SAFE", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/api/safe", url.Values{"url": {"http://err.example/"}}))
	assert.Equal(t, "UNSAFE", w.Body.String())
}

func TestSweepEndpoint(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.store.EXPECT().ListAll(gomock.Any()).Return([]types.ShortURL{*sampleRecord()}, nil)
	m.verifier.EXPECT().IsSafe(gomock.Any(), "http://example.com/").Return(true, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	var report SweepReport
	require.NoError(t, json.NewDecoder(w.Body).Decode(&report))
	assert.Equal(t, SweepReport{Checked: 1}, report)
}

func TestQREndpoint(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.store.EXPECT().FindByKey(gomock.Any(), "abc123").Return(sampleRecord(), nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/urls/abc123/qr", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))
}

func TestQREndpointNotFound(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.store.EXPECT().FindByKey(gomock.Any(), "missing").Return(nil, types.ErrNotFound)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/urls/missing/qr", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClicksEndpoint(t *testing.T) {
	h, m := newTestServer(t, date(2024, 1, 1))

	m.store.EXPECT().FindByKey(gomock.Any(), "abc123").Return(sampleRecord(), nil)
	m.clicks.EXPECT().CountClicks(gomock.Any(), "abc123").Return(int64(7), nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/urls/abc123/clicks", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hash":"abc123","clicks":7}`, w.Body.String())
}
