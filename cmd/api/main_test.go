package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accessmap/internal/auth"
	"accessmap/internal/places"
	"accessmap/internal/ratelimiter"
	"accessmap/internal/selection"
	"accessmap/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T, st store.Storage) *application {
	t.Helper()

	return &application{
		config: config{
			auth: authConfig{
				basic: basicConfig{user: "admin", pass: "admin"},
			},
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		store:         st,
		logger:        zap.NewNop().Sugar(),
		authenticator: auth.NewJWTAuthenticator("test-secret", "accessmap", "accessmap", time.Hour),
	}
}

func (app *application) testToken(t *testing.T, session auth.Session) string {
	t.Helper()

	token, err := app.authenticator.GenerateSessionToken(session)
	require.NoError(t, err)
	return token
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()

	require.Equal(t, expected, actual, "unexpected response status")
}

// stubUsersStore satisfies the Users interface with canned results.
type stubUsersStore struct {
	user     *store.User
	getErr   error
	setErr   error
	imageSet string
}

func (s *stubUsersStore) GetByEmail(_ context.Context, email string) (*store.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.user, nil
}

func (s *stubUsersStore) SetImage(_ context.Context, _ uuid.UUID, url string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.imageSet = url
	return nil
}

// stubReviewsStore satisfies the Reviews interface and records what
// the handlers passed down.
type stubReviewsStore struct {
	review  *store.Review
	list    []store.Review
	summary *store.ReviewSummary
	err     error

	submittedIdentity store.UserIdentity
	submittedPlace    store.PlaceRef
	submittedInput    store.ReviewInput
	editedEmail       string
	editedPlaceID     string
}

func (s *stubReviewsStore) Submit(_ context.Context, identity store.UserIdentity, place store.PlaceRef, input store.ReviewInput) (*store.Review, error) {
	s.submittedIdentity = identity
	s.submittedPlace = place
	s.submittedInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

func (s *stubReviewsStore) Edit(_ context.Context, email, placeID string, input store.ReviewInput) (*store.Review, error) {
	s.editedEmail = email
	s.editedPlaceID = placeID
	s.submittedInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

func (s *stubReviewsStore) ListByPlace(_ context.Context, _ string) ([]store.Review, error) {
	return s.list, s.err
}

func (s *stubReviewsStore) ListByUserEmail(_ context.Context, _ string) ([]store.Review, error) {
	return s.list, s.err
}

func (s *stubReviewsStore) PlaceSummary(_ context.Context, _ string) (*store.ReviewSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

// stubDirectory satisfies places.Directory without network calls.
type stubDirectory struct {
	details    *places.Details
	candidates []selection.Candidate
	err        error
}

func (s *stubDirectory) Details(_ context.Context, _ string) (*places.Details, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.details, nil
}

func (s *stubDirectory) Nearby(_ context.Context, _, _ float64, _ int) ([]selection.Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}
