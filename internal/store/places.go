package store

import (
	"context"
	"database/sql"
	"time"
)

type Place struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PlacesStore struct {
	db *sql.DB
}

// Upsert inserts the place on first sight and otherwise refreshes the
// directory-sourced name and address. The refresh is unconditional:
// whatever the submission carried wins.
func (s *PlacesStore) Upsert(ctx context.Context, tx *sql.Tx, place *Place) error {
	query := `
        INSERT INTO places (id, name, address)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE
        SET name = EXCLUDED.name,
            address = EXCLUDED.address
        RETURNING created_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return tx.QueryRowContext(ctx, query,
		place.ID,
		place.Name,
		place.Address,
	).Scan(&place.CreatedAt)
}
