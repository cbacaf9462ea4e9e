package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"urlshortener/internal/service/mocks"
	"urlshortener/internal/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shortenerMocks struct {
	store    *mocks.MockURLStore
	checker  *mocks.MockURLChecker
	verifier *mocks.MockSafetyVerifier
}

func newTestShortener(t *testing.T) (*Shortener, shortenerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := shortenerMocks{
		store:    mocks.NewMockURLStore(ctrl),
		checker:  mocks.NewMockURLChecker(ctrl),
		verifier: mocks.NewMockSafetyVerifier(ctrl),
	}
	s := NewShortener(m.store, m.checker, m.verifier, "http://localhost:8080", testLogger())
	s.now = func() time.Time { return date(2024, 1, 1) }
	ids := []string{"owner-uuid", "hash-seed-uuid"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	return s, m
}

func TestShortenCreatesRecord(t *testing.T) {
	s, m := newTestShortener(t)
	exp := date(2099, 1, 1)
	hash := shortHash("hash-seed-uuid")

	m.checker.EXPECT().Check(gomock.Any(), "http://example.com/").Return(true)
	m.verifier.EXPECT().IsSafe(gomock.Any(), "http://example.com/").Return(true, nil)
	m.store.EXPECT().FindByKey(gomock.Any(), hash).Return(nil, types.ErrNotFound)
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, su *types.ShortURL) (*types.ShortURL, error) { return su, nil })

	su, err := s.Shorten(context.Background(), ShortenRequest{
		URL:       "http://example.com/",
		Sponsor:   "acme",
		IP:        "203.0.113.7",
		ExpiresAt: &exp,
	})
	require.NoError(t, err)

	assert.Equal(t, hash, su.Hash)
	assert.Len(t, su.Hash, 8)
	assert.Equal(t, "http://localhost:8080/"+hash, su.URI)
	assert.Equal(t, "http://example.com/", su.Target)
	assert.Equal(t, "acme", su.Sponsor)
	assert.Equal(t, "owner-uuid", su.Owner)
	assert.Equal(t, http.StatusTemporaryRedirect, su.Mode)
	assert.True(t, su.Safe)
	assert.Equal(t, "203.0.113.7", su.IP)
	assert.Equal(t, date(2024, 1, 1), su.Created)
	assert.Equal(t, &exp, su.ExpiresAt)
}

func TestShortenUpdatesExistingHash(t *testing.T) {
	s, m := newTestShortener(t)

	m.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(true)
	m.verifier.EXPECT().IsSafe(gomock.Any(), gomock.Any()).Return(true, nil)
	m.store.EXPECT().FindByKey(gomock.Any(), gomock.Any()).Return(sampleRecord(), nil)
	m.store.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, su *types.ShortURL) (*types.ShortURL, error) { return su, nil })

	su, err := s.Shorten(context.Background(), ShortenRequest{URL: "http://example.com/", Owner: "tg:42"})
	require.NoError(t, err)
	assert.Equal(t, "tg:42", su.Owner)
}

func TestShortenRejectsInvalidURL(t *testing.T) {
	s, m := newTestShortener(t)

	m.checker.EXPECT().Check(gomock.Any(), "nope").Return(false)

	_, err := s.Shorten(context.Background(), ShortenRequest{URL: "nope"})
	assert.ErrorIs(t, err, ErrURLNotValid)
}

func TestShortenRejectsUnsafeURL(t *testing.T) {
	s, m := newTestShortener(t)

	m.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(true)
	m.verifier.EXPECT().IsSafe(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := s.Shorten(context.Background(), ShortenRequest{URL: "http://malware.example/"})
	assert.ErrorIs(t, err, ErrURLUnsafe)
}

func TestShortenFailsClosedOnVerifierError(t *testing.T) {
	s, m := newTestShortener(t)
	boom := errors.New("lookup timeout")

	m.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(true)
	m.verifier.EXPECT().IsSafe(gomock.Any(), gomock.Any()).Return(false, boom)

	_, err := s.Shorten(context.Background(), ShortenRequest{URL: "http://example.com/"})
	assert.ErrorIs(t, err, boom)
}

func TestShortenStoreFailure(t *testing.T) {
	s, m := newTestShortener(t)
	boom := errors.New("insert failed")

	m.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(true)
	m.verifier.EXPECT().IsSafe(gomock.Any(), gomock.Any()).Return(true, nil)
	m.store.EXPECT().FindByKey(gomock.Any(), gomock.Any()).Return(nil, types.ErrNotFound)
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := s.Shorten(context.Background(), ShortenRequest{URL: "http://example.com/"})
	assert.ErrorIs(t, err, boom)
}

func TestShortHash(t *testing.T) {
	a := shortHash("seed-a")
	assert.Len(t, a, 8)
	assert.Equal(t, a, shortHash("seed-a"))
	assert.NotEqual(t, a, shortHash("seed-b"))
}

func TestParseExpiration(t *testing.T) {
	got, err := ParseExpiration("2099-01-01", "13:45", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2099, 1, 1, 13, 45, 0, 0, time.UTC), *got)

	got, err = ParseExpiration("2099-01-01", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, date(2099, 1, 1), *got)

	got, err = ParseExpiration("", "13:45", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseExpiration("01/01/2099", "", time.UTC)
	assert.Error(t, err)

	_, err = ParseExpiration("2099-01-01", "25:00", time.UTC)
	assert.Error(t, err)
}
