package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateReviewsTable, downCreateReviewsTable)
}

func upCreateReviewsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE reviews (
	  id UUID PRIMARY KEY,
	  user_id UUID REFERENCES users (id),
	  place_id TEXT REFERENCES places (id),
	  rating_wheelchair SMALLINT CHECK (rating_wheelchair BETWEEN 0 AND 5),
	  rating_bathroom SMALLINT CHECK (rating_bathroom BETWEEN 0 AND 5),
	  rating_entrance SMALLINT CHECK (rating_entrance BETWEEN 0 AND 5),
	  rating_parking SMALLINT CHECK (rating_parking BETWEEN 0 AND 5),
	  rating_hearing SMALLINT CHECK (rating_hearing BETWEEN 0 AND 5),
	  rating_vision SMALLINT CHECK (rating_vision BETWEEN 0 AND 5),
	  comment TEXT,
	  edited BOOLEAN NOT NULL DEFAULT false,
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  UNIQUE (user_id, place_id)
	);

	CREATE INDEX idx_reviews_place_id ON reviews (place_id);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateReviewsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE reviews;`)
	return err
}
