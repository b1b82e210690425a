package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UsersStore struct {
	db *sql.DB
}

// Upsert inserts the user or, when the email is already registered,
// refreshes the display name. The avatar is only overwritten when the
// identity provider supplied one.
func (s *UsersStore) Upsert(ctx context.Context, tx *sql.Tx, user *User) error {
	query := `
        INSERT INTO users (id, name, email, image)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (email) DO UPDATE
        SET name = EXCLUDED.name,
            image = COALESCE(EXCLUDED.image, users.image)
        RETURNING id, created_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return tx.QueryRowContext(ctx, query,
		uuid.New(),
		user.Name,
		user.Email,
		user.Image,
	).Scan(&user.ID, &user.CreatedAt)
}

func (s *UsersStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
        SELECT id, name, email, image, created_at
        FROM users
        WHERE email = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var user User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Image,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *UsersStore) SetImage(ctx context.Context, userID uuid.UUID, url string) error {
	query := `UPDATE users SET image = $1 WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query, url, userID)
	if err != nil {
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
