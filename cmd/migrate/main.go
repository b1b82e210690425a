package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "accessmap/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

func main() {
	_ = godotenv.Load()

	flag.Parse()
	command := "up"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	db, err := sql.Open("pgx", os.Getenv("DB_ADDR"))
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	// Migrations are registered from accessmap/migrations; the
	// directory argument only anchors goose's lookup.
	switch command {
	case "up":
		err = goose.Up(db, "migrations")
	case "down":
		err = goose.Down(db, "migrations")
	case "status":
		err = goose.Status(db, "migrations")
	default:
		log.Fatalf("unknown command %q (want up, down or status)", command)
	}
	if err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	log.Printf("goose %s: done", command)
}
