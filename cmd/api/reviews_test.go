package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accessmap/internal/auth"
	"accessmap/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleReview() *store.Review {
	five := int16(5)
	return &store.Review{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		PlaceID:    "P1",
		Wheelchair: &five,
		Comment:    "great ramp",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestSubmitReview(t *testing.T) {
	reviews := &stubReviewsStore{review: sampleReview()}
	app := newTestApplication(t, store.Storage{
		Users:   &stubUsersStore{},
		Reviews: reviews,
	})
	mux := app.mount()

	session := auth.Session{Email: "ana@example.com", Name: "Ana"}

	body := `{
		"googlePlaceId": "P1",
		"placeName": "Museu do Amanhã",
		"placeAddress": "Praça Mauá 1",
		"comment": "great ramp",
		"wheelchair": 5,
		"bathroom": 4
	}`

	t.Run("rejects missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
		rr := executeRequest(req, mux)
		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects session without display name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, auth.Session{Email: "ana@example.com"}))
		rr := executeRequest(req, mux)
		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		bad := `{"googlePlaceId": "P1", "comment": "x", "wheelchair": 6}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(bad))
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, mux)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects missing comment", func(t *testing.T) {
		bad := `{"googlePlaceId": "P1", "wheelchair": 3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(bad))
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, mux)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		bad := `{"googlePlaceId": "P1", "comment": "x", "overall": 5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(bad))
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, mux)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("submits for the session identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, mux)
		checkResponseCode(t, http.StatusOK, rr.Code)

		require.Equal(t, "ana@example.com", reviews.submittedIdentity.Email)
		require.Equal(t, "Ana", reviews.submittedIdentity.Name)
		require.Equal(t, "P1", reviews.submittedPlace.ID)
		require.Equal(t, "Museu do Amanhã", reviews.submittedPlace.Name)
		require.Equal(t, "great ramp", reviews.submittedInput.Comment)
		require.Equal(t, int16(5), *reviews.submittedInput.Wheelchair)
		require.Equal(t, int16(4), *reviews.submittedInput.Bathroom)
		require.Nil(t, reviews.submittedInput.Vision)

		var resp struct {
			Data store.Review `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Equal(t, "P1", resp.Data.PlaceID)
	})
}

func TestGetPlaceReviews(t *testing.T) {
	t.Run("requires placeId", func(t *testing.T) {
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{}})
		req := httptest.NewRequest(http.MethodGet, "/v1/reviews", nil)
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("returns reviews with rounded means and recent comments", func(t *testing.T) {
		mean := 4.3333333
		list := []store.Review{
			{ID: uuid.New(), PlaceID: "P1", Comment: "", UserName: "Ana"},
			{ID: uuid.New(), PlaceID: "P1", Comment: "newest words", UserName: "Bruno"},
			{ID: uuid.New(), PlaceID: "P1", Comment: "older words", UserName: "Carla"},
			{ID: uuid.New(), PlaceID: "P1", Comment: "oldest words", UserName: "Davi"},
		}
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{
			list:    list,
			summary: &store.ReviewSummary{TotalReviews: 4, Wheelchair: &mean},
		}})

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews?placeId=P1", nil)
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusOK, rr.Code)

		var resp struct {
			Data struct {
				Reviews        []store.Review      `json:"reviews"`
				Summary        store.ReviewSummary `json:"summary"`
				RecentComments []string            `json:"recent_comments"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Reviews, 4)
		require.Equal(t, 4, resp.Data.Summary.TotalReviews)
		require.Equal(t, 4.3, *resp.Data.Summary.Wheelchair)
		require.Nil(t, resp.Data.Summary.Bathroom)
		require.Equal(t, []string{"newest words", "older words"}, resp.Data.RecentComments)
	})

	t.Run("returns empty list for unreviewed place", func(t *testing.T) {
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{
			summary: &store.ReviewSummary{},
		}})

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews?placeId=nowhere", nil)
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusOK, rr.Code)

		require.Contains(t, rr.Body.String(), `"reviews":[]`)
		require.Contains(t, rr.Body.String(), `"total_reviews":0`)
	})
}

func TestEditReview(t *testing.T) {
	session := auth.Session{Email: "ana@example.com", Name: "Ana"}
	body := `{"googlePlaceId": "P1", "comment": "updated words", "wheelchair": 2}`

	t.Run("rejects missing token", func(t *testing.T) {
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{}})
		req := httptest.NewRequest(http.MethodPut, "/v1/reviews/edit", bytes.NewBufferString(body))
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("404 when no review exists", func(t *testing.T) {
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{err: store.ErrNotFound}})
		req := httptest.NewRequest(http.MethodPut, "/v1/reviews/edit", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})

	t.Run("overwrites and returns the review", func(t *testing.T) {
		edited := sampleReview()
		edited.Edited = true
		reviews := &stubReviewsStore{review: edited}
		app := newTestApplication(t, store.Storage{Reviews: reviews})

		req := httptest.NewRequest(http.MethodPut, "/v1/reviews/edit", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusOK, rr.Code)

		require.Equal(t, "ana@example.com", reviews.editedEmail)
		require.Equal(t, "P1", reviews.editedPlaceID)
		require.Equal(t, "updated words", reviews.submittedInput.Comment)

		var resp struct {
			Data store.Review `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.True(t, resp.Data.Edited)
	})
}

func TestReviewHistory(t *testing.T) {
	session := auth.Session{Email: "ana@example.com", Name: "Ana"}

	t.Run("rejects missing token", func(t *testing.T) {
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{}})
		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/history", nil)
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("returns the caller's reviews", func(t *testing.T) {
		list := []store.Review{*sampleReview(), *sampleReview()}
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{list: list}})

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/history", nil)
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusOK, rr.Code)

		var resp struct {
			Data []store.Review `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
	})

	t.Run("empty history renders an empty array", func(t *testing.T) {
		app := newTestApplication(t, store.Storage{Reviews: &stubReviewsStore{}})

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/history", nil)
		req.Header.Set("Authorization", "Bearer "+app.testToken(t, session))
		rr := executeRequest(req, app.mount())
		checkResponseCode(t, http.StatusOK, rr.Code)
		require.Contains(t, rr.Body.String(), `"data":[]`)
	})
}
