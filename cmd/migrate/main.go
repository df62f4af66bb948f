package main

import (
	"errors"
	"flag"
	"log"

	"github.com/SonyFebri/hris-backend/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var (
		dir  = flag.String("dir", "migrations", "migrations directory")
		down = flag.Bool("down", false, "roll back all migrations instead of applying them")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	m, err := migrate.New("file://"+*dir, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Failed to initialize migrations: ", err)
	}
	defer m.Close()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migrations applied")
}
