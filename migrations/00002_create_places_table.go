package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePlacesTable, downCreatePlacesTable)
}

func upCreatePlacesTable(ctx context.Context, tx *sql.Tx) error {
	// id is the opaque identifier assigned by the external places
	// directory, not a value we generate.
	query := `
	CREATE TABLE places (
	  id TEXT PRIMARY KEY,
	  name TEXT NOT NULL DEFAULT '',
	  address TEXT NOT NULL DEFAULT '',
	  lat DOUBLE PRECISION,
	  lng DOUBLE PRECISION,
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreatePlacesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE places;`)
	return err
}
