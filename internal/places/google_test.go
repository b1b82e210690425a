package places_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"accessmap/internal/places"

	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T, handler http.HandlerFunc) *places.GoogleDirectory {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := places.NewGoogleDirectory("test-key")
	dir.BaseURL = srv.URL
	return dir
}

func TestGoogleDirectory_Details(t *testing.T) {
	dir := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/details/json", r.URL.Path)
		require.Equal(t, "P1", r.URL.Query().Get("place_id"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "P1",
				"name": "Museu do Amanhã",
				"formatted_address": "Praça Mauá 1, Rio de Janeiro",
				"url": "https://maps.google.com/?cid=123",
				"geometry": {"location": {"lat": -22.8938, "lng": -43.1797}}
			}
		}`))
	})

	details, err := dir.Details(context.Background(), "P1")
	require.NoError(t, err)
	require.Equal(t, "P1", details.PlaceID)
	require.Equal(t, "Museu do Amanhã", details.Name)
	require.Equal(t, "Praça Mauá 1, Rio de Janeiro", details.Address)
	require.Equal(t, "https://maps.google.com/?cid=123", details.MapsURL)
	require.NotNil(t, details.Lat)
	require.InDelta(t, -22.8938, *details.Lat, 0.0001)
}

func TestGoogleDirectory_DetailsNotFound(t *testing.T) {
	dir := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	})

	_, err := dir.Details(context.Background(), "ghost")
	require.ErrorIs(t, err, places.ErrNotFound)
}

func TestGoogleDirectory_DetailsUpstreamError(t *testing.T) {
	dir := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OVER_QUERY_LIMIT"}`))
	})

	_, err := dir.Details(context.Background(), "P1")
	require.Error(t, err)
	require.NotErrorIs(t, err, places.ErrNotFound)
}

func TestGoogleDirectory_Nearby(t *testing.T) {
	dir := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/nearbysearch/json", r.URL.Path)
		require.Equal(t, "50", r.URL.Query().Get("radius"))

		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"place_id": "P1",
					"name": "Museu do Amanhã",
					"vicinity": "Praça Mauá",
					"types": ["museum", "point_of_interest"],
					"geometry": {"location": {"lat": -22.89, "lng": -43.17}}
				},
				{
					"place_id": "P2",
					"name": "Café Central",
					"vicinity": "Rua do Ouvidor",
					"types": ["establishment"],
					"geometry": {"location": {"lat": -22.9, "lng": -43.18}}
				}
			]
		}`))
	})

	candidates, err := dir.Nearby(context.Background(), -22.89, -43.17, 50)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.Equal(t, "P1", candidates[0].PlaceID)
	require.Equal(t, "Praça Mauá", candidates[0].Vicinity)
	require.Contains(t, candidates[0].Types, "museum")
	require.InDelta(t, -22.9, candidates[1].Lat, 0.0001)
}

func TestGoogleDirectory_NearbyZeroResults(t *testing.T) {
	dir := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	candidates, err := dir.Nearby(context.Background(), 0, 0, 50)
	require.NoError(t, err)
	require.Empty(t, candidates)
}

func TestGoogleDirectory_HTTPError(t *testing.T) {
	dir := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := dir.Details(context.Background(), "P1")
	require.Error(t, err)
}
