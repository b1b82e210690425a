package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PlaceID    string    `json:"place_id"`
	Wheelchair *int16    `json:"wheelchair"`
	Bathroom   *int16    `json:"bathroom"`
	Entrance   *int16    `json:"entrance"`
	Parking    *int16    `json:"parking"`
	Hearing    *int16    `json:"hearing"`
	Vision     *int16    `json:"vision"`
	Comment    string    `json:"comment"`
	Edited     bool      `json:"edited"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Joined fields
	UserName  string  `json:"user_name,omitempty"`
	UserEmail string  `json:"user_email,omitempty"`
	UserImage *string `json:"user_image,omitempty"`
}

func (r *Review) applyInput(input ReviewInput) {
	r.Wheelchair = input.Wheelchair
	r.Bathroom = input.Bathroom
	r.Entrance = input.Entrance
	r.Parking = input.Parking
	r.Hearing = input.Hearing
	r.Vision = input.Vision
	r.Comment = input.Comment
}

// ReviewSummary aggregates one place's reviews: per-dimension means
// over the ratings that were actually given. A nil mean says nobody
// rated that dimension yet.
type ReviewSummary struct {
	TotalReviews int      `json:"total_reviews"`
	Wheelchair   *float64 `json:"wheelchair"`
	Bathroom     *float64 `json:"bathroom"`
	Entrance     *float64 `json:"entrance"`
	Parking      *float64 `json:"parking"`
	Hearing      *float64 `json:"hearing"`
	Vision       *float64 `json:"vision"`
}

type ReviewStore struct {
	db     *sql.DB
	users  *UsersStore
	places *PlacesStore
}

// Submit creates or overwrites the caller's review for a place. The
// user and place rows are refreshed first, then the review is looked
// up and either inserted (edited=false) or overwritten (edited=true).
// All three writes share one transaction so a failure can never leave
// a user or place row without its review.
func (s *ReviewStore) Submit(ctx context.Context, identity UserIdentity, place PlaceRef, input ReviewInput) (*Review, error) {
	var review *Review

	err := withTx(s.db, ctx, func(tx *sql.Tx) error {
		user := &User{
			Name:  identity.Name,
			Email: identity.Email,
			Image: identity.Image,
		}
		if err := s.users.Upsert(ctx, tx, user); err != nil {
			return err
		}

		p := &Place{
			ID:      place.ID,
			Name:    place.Name,
			Address: place.Address,
		}
		if err := s.places.Upsert(ctx, tx, p); err != nil {
			return err
		}

		existing, err := s.getForUpdate(ctx, tx, user.ID, p.ID)
		switch {
		case err == nil:
			existing.applyInput(input)
			if err := s.update(ctx, tx, existing); err != nil {
				return err
			}
			review = existing
		case errors.Is(err, ErrNotFound):
			fresh := &Review{
				ID:      uuid.New(),
				UserID:  user.ID,
				PlaceID: p.ID,
			}
			fresh.applyInput(input)
			if err := s.create(ctx, tx, fresh); err != nil {
				return err
			}
			review = fresh
		default:
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// Edit overwrites an existing review and marks it edited. It shares
// the update path with Submit but never creates rows: a missing user
// or review surfaces as ErrNotFound.
func (s *ReviewStore) Edit(ctx context.Context, email, placeID string, input ReviewInput) (*Review, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var review *Review

	err = withTx(s.db, ctx, func(tx *sql.Tx) error {
		existing, err := s.getForUpdate(ctx, tx, user.ID, placeID)
		if err != nil {
			return err
		}

		existing.applyInput(input)
		if err := s.update(ctx, tx, existing); err != nil {
			return err
		}

		review = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// getForUpdate fetches the single review a user owns for a place,
// locked for the duration of the transaction.
func (s *ReviewStore) getForUpdate(ctx context.Context, tx *sql.Tx, userID uuid.UUID, placeID string) (*Review, error) {
	query := `
        SELECT id, user_id, place_id,
               rating_wheelchair, rating_bathroom, rating_entrance,
               rating_parking, rating_hearing, rating_vision,
               comment, edited, created_at, updated_at
        FROM reviews
        WHERE user_id = $1 AND place_id = $2
        FOR UPDATE
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var review Review
	err := tx.QueryRowContext(ctx, query, userID, placeID).Scan(
		&review.ID,
		&review.UserID,
		&review.PlaceID,
		&review.Wheelchair,
		&review.Bathroom,
		&review.Entrance,
		&review.Parking,
		&review.Hearing,
		&review.Vision,
		&review.Comment,
		&review.Edited,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (s *ReviewStore) create(ctx context.Context, tx *sql.Tx, review *Review) error {
	query := `
        INSERT INTO reviews
            (id, user_id, place_id,
             rating_wheelchair, rating_bathroom, rating_entrance,
             rating_parking, rating_hearing, rating_vision,
             comment, edited)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false)
        RETURNING edited, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return tx.QueryRowContext(ctx, query,
		review.ID,
		review.UserID,
		review.PlaceID,
		review.Wheelchair,
		review.Bathroom,
		review.Entrance,
		review.Parking,
		review.Hearing,
		review.Vision,
		review.Comment,
	).Scan(&review.Edited, &review.CreatedAt, &review.UpdatedAt)
}

// update overwrites every submitted field, marks the review edited and
// refreshes updated_at.
func (s *ReviewStore) update(ctx context.Context, tx *sql.Tx, review *Review) error {
	query := `
        UPDATE reviews
        SET rating_wheelchair = $1,
            rating_bathroom = $2,
            rating_entrance = $3,
            rating_parking = $4,
            rating_hearing = $5,
            rating_vision = $6,
            comment = $7,
            edited = true,
            updated_at = now()
        WHERE id = $8
        RETURNING edited, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := tx.QueryRowContext(ctx, query,
		review.Wheelchair,
		review.Bathroom,
		review.Entrance,
		review.Parking,
		review.Hearing,
		review.Vision,
		review.Comment,
		review.ID,
	).Scan(&review.Edited, &review.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

// ListByPlace returns every review for a place joined with reviewer
// identity, most recently touched first.
func (s *ReviewStore) ListByPlace(ctx context.Context, placeID string) ([]Review, error) {
	query := `
        SELECT r.id, r.user_id, r.place_id,
               r.rating_wheelchair, r.rating_bathroom, r.rating_entrance,
               r.rating_parking, r.rating_hearing, r.rating_vision,
               r.comment, r.edited, r.created_at, r.updated_at,
               u.name, u.email, u.image
        FROM reviews r
        JOIN users u ON u.id = r.user_id
        WHERE r.place_id = $1
        ORDER BY r.updated_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

// ListByUserEmail returns a user's review history, most recent first.
// The reviewer is resolved through the users relation by email, the
// only identity the session carries.
func (s *ReviewStore) ListByUserEmail(ctx context.Context, email string) ([]Review, error) {
	query := `
        SELECT r.id, r.user_id, r.place_id,
               r.rating_wheelchair, r.rating_bathroom, r.rating_entrance,
               r.rating_parking, r.rating_hearing, r.rating_vision,
               r.comment, r.edited, r.created_at, r.updated_at,
               u.name, u.email, u.image
        FROM reviews r
        JOIN users u ON u.id = r.user_id
        WHERE u.email = $1
        ORDER BY r.updated_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows *sql.Rows) ([]Review, error) {
	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.PlaceID,
			&review.Wheelchair,
			&review.Bathroom,
			&review.Entrance,
			&review.Parking,
			&review.Hearing,
			&review.Vision,
			&review.Comment,
			&review.Edited,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.UserName,
			&review.UserEmail,
			&review.UserImage,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// PlaceSummary computes the per-dimension rating means for a place.
// AVG ignores rows where a dimension was skipped, so a left-empty
// rating never drags the mean toward zero.
func (s *ReviewStore) PlaceSummary(ctx context.Context, placeID string) (*ReviewSummary, error) {
	query := `
        SELECT COUNT(id),
               AVG(rating_wheelchair),
               AVG(rating_bathroom),
               AVG(rating_entrance),
               AVG(rating_parking),
               AVG(rating_hearing),
               AVG(rating_vision)
        FROM reviews
        WHERE place_id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var summary ReviewSummary
	err := s.db.QueryRowContext(ctx, query, placeID).Scan(
		&summary.TotalReviews,
		&summary.Wheelchair,
		&summary.Bathroom,
		&summary.Entrance,
		&summary.Parking,
		&summary.Hearing,
		&summary.Vision,
	)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
