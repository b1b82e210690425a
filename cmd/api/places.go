package main

import (
	"errors"
	"net/http"
	"strconv"

	"accessmap/internal/places"
	"accessmap/internal/selection"

	"github.com/go-chi/chi/v5"
)

// getPlaceHandler godoc
//
//	@Summary		Place details
//	@Description	Proxies the external places directory so the browser never holds the directory API key.
//	@Tags			places
//	@Produce		json
//	@Param			placeID	path		string	true	"Place identifier"
//	@Success		200		{object}	places.Details
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Router			/places/{placeID} [get]
func (app *application) getPlaceHandler(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeID")

	details, err := app.directory.Details(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, places.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, details)
}

// defaultNearbyRadius matches the tight radius a map click implies.
const defaultNearbyRadius = 50

// nearbyPlacesHandler godoc
//
//	@Summary		Nearby place candidates
//	@Description	Returns the shortlist of reviewable places around a clicked map point, for the disambiguation panel.
//	@Tags			places
//	@Produce		json
//	@Param			lat		query		number	true	"Latitude"
//	@Param			lng		query		number	true	"Longitude"
//	@Param			radius	query		integer	false	"Search radius in meters (default 50)"
//	@Success		200		{array}		selection.Candidate
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Router			/places/nearby [get]
func (app *application) nearbyPlacesHandler(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid lat"))
		return
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid lng"))
		return
	}

	radius := defaultNearbyRadius
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius <= 0 {
			app.badRequestResponse(w, r, errors.New("invalid radius"))
			return
		}
	}

	nearby, err := app.directory.Nearby(r.Context(), lat, lng, radius)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	candidates := selection.Shortlist(nearby)
	if candidates == nil {
		candidates = []selection.Candidate{}
	}

	app.jsonResponse(w, http.StatusOK, candidates)
}
