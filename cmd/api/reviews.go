package main

import (
	"errors"
	"math"
	"net/http"

	"accessmap/internal/store"
)

type submitReviewPayload struct {
	GooglePlaceID string  `json:"googlePlaceId" validate:"required"`
	PlaceName     string  `json:"placeName" validate:"max=255"`
	PlaceAddress  string  `json:"placeAddress" validate:"max=500"`
	Comment       *string `json:"comment" validate:"required,max=500"`
	Wheelchair    *int16  `json:"wheelchair" validate:"omitempty,min=0,max=5"`
	Bathroom      *int16  `json:"bathroom" validate:"omitempty,min=0,max=5"`
	Entrance      *int16  `json:"entrance" validate:"omitempty,min=0,max=5"`
	Parking       *int16  `json:"parking" validate:"omitempty,min=0,max=5"`
	Hearing       *int16  `json:"hearing" validate:"omitempty,min=0,max=5"`
	Vision        *int16  `json:"vision" validate:"omitempty,min=0,max=5"`
}

func (p *submitReviewPayload) input() store.ReviewInput {
	return store.ReviewInput{
		Wheelchair: p.Wheelchair,
		Bathroom:   p.Bathroom,
		Entrance:   p.Entrance,
		Parking:    p.Parking,
		Hearing:    p.Hearing,
		Vision:     p.Vision,
		Comment:    *p.Comment,
	}
}

// submitReviewHandler godoc
//
//	@Summary		Submit a review
//	@Description	Creates the caller's review for a place, or overwrites it when one already exists. Place and user rows are created on first sight.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		submitReviewPayload	true	"Review"
//	@Success		200		{object}	store.Review
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews [post]
func (app *application) submitReviewHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r)
	if session.Name == "" {
		app.unauthorizedErrorResponse(w, r, errors.New("session has no display name"))
		return
	}

	var payload submitReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	identity := store.UserIdentity{
		Name:  session.Name,
		Email: session.Email,
		Image: session.Image,
	}
	place := store.PlaceRef{
		ID:      payload.GooglePlaceID,
		Name:    payload.PlaceName,
		Address: payload.PlaceAddress,
	}

	review, err := app.store.Reviews.Submit(r.Context(), identity, place, payload.input())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, review)
}

// getPlaceReviewsHandler godoc
//
//	@Summary		List reviews for a place
//	@Description	Returns every review for the place, most recently touched first, with the per-dimension rating means and the latest comments.
//	@Tags			reviews
//	@Produce		json
//	@Param			placeId	query		string	true	"Place identifier"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Router			/reviews [get]
func (app *application) getPlaceReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("placeId")
	if placeID == "" {
		app.badRequestResponse(w, r, errors.New("placeId is required"))
		return
	}

	reviews, err := app.store.Reviews.ListByPlace(r.Context(), placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []store.Review{}
	}

	summary, err := app.store.Reviews.PlaceSummary(r.Context(), placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	roundSummary(summary)

	response := map[string]interface{}{
		"reviews":         reviews,
		"summary":         summary,
		"recent_comments": recentComments(reviews, 2),
	}

	app.jsonResponse(w, http.StatusOK, response)
}

type editReviewPayload struct {
	GooglePlaceID string  `json:"googlePlaceId" validate:"required"`
	Comment       *string `json:"comment" validate:"required,max=500"`
	Wheelchair    *int16  `json:"wheelchair" validate:"omitempty,min=0,max=5"`
	Bathroom      *int16  `json:"bathroom" validate:"omitempty,min=0,max=5"`
	Entrance      *int16  `json:"entrance" validate:"omitempty,min=0,max=5"`
	Parking       *int16  `json:"parking" validate:"omitempty,min=0,max=5"`
	Hearing       *int16  `json:"hearing" validate:"omitempty,min=0,max=5"`
	Vision        *int16  `json:"vision" validate:"omitempty,min=0,max=5"`
}

// editReviewHandler godoc
//
//	@Summary		Edit an existing review
//	@Description	Overwrites the caller's review for a place and marks it edited. Fails when no review exists yet.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		editReviewPayload	true	"Updated review"
//	@Success		200		{object}	store.Review
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/edit [put]
func (app *application) editReviewHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r)

	var payload editReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input := store.ReviewInput{
		Wheelchair: payload.Wheelchair,
		Bathroom:   payload.Bathroom,
		Entrance:   payload.Entrance,
		Parking:    payload.Parking,
		Hearing:    payload.Hearing,
		Vision:     payload.Vision,
		Comment:    *payload.Comment,
	}

	review, err := app.store.Reviews.Edit(r.Context(), session.Email, payload.GooglePlaceID, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, review)
}

// reviewHistoryHandler godoc
//
//	@Summary		Caller's review history
//	@Description	Returns every review the authenticated user has written, most recent first.
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{array}		store.Review
//	@Failure		401	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/history [get]
func (app *application) reviewHistoryHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r)

	reviews, err := app.store.Reviews.ListByUserEmail(r.Context(), session.Email)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []store.Review{}
	}

	app.jsonResponse(w, http.StatusOK, reviews)
}

// roundSummary trims each mean to one decimal for display.
func roundSummary(summary *store.ReviewSummary) {
	for _, mean := range []**float64{
		&summary.Wheelchair,
		&summary.Bathroom,
		&summary.Entrance,
		&summary.Parking,
		&summary.Hearing,
		&summary.Vision,
	} {
		if *mean != nil {
			rounded := math.Round(**mean*10) / 10
			*mean = &rounded
		}
	}
}

// recentComments picks the first non-empty comments from a list that
// is already ordered most recent first.
func recentComments(reviews []store.Review, n int) []string {
	comments := []string{}
	for _, review := range reviews {
		if review.Comment == "" {
			continue
		}
		comments = append(comments, review.Comment)
		if len(comments) == n {
			break
		}
	}
	return comments
}
