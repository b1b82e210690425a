package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

// UserIdentity is what the session token tells us about the caller.
type UserIdentity struct {
	Name  string
	Email string
	Image *string
}

// PlaceRef identifies a place as reported by the external directory.
type PlaceRef struct {
	ID      string
	Name    string
	Address string
}

// ReviewInput carries the six rating dimensions plus the comment.
// A nil rating means the reviewer skipped that dimension.
type ReviewInput struct {
	Wheelchair *int16
	Bathroom   *int16
	Entrance   *int16
	Parking    *int16
	Hearing    *int16
	Vision     *int16
	Comment    string
}

type Storage struct {
	Users interface {
		GetByEmail(context.Context, string) (*User, error)
		SetImage(context.Context, uuid.UUID, string) error
	}
	Reviews interface {
		Submit(context.Context, UserIdentity, PlaceRef, ReviewInput) (*Review, error)
		Edit(ctx context.Context, email, placeID string, input ReviewInput) (*Review, error)
		ListByPlace(context.Context, string) ([]Review, error)
		ListByUserEmail(context.Context, string) ([]Review, error)
		PlaceSummary(context.Context, string) (*ReviewSummary, error)
	}
}

func NewStorage(db *sql.DB) Storage {
	users := &UsersStore{db}
	places := &PlacesStore{db}

	return Storage{
		Users:   users,
		Reviews: &ReviewStore{db: db, users: users, places: places},
	}
}

func withTx(db *sql.DB, ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
