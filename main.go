package main

import (
	"flag"
	"log/slog"
	"os"

	"polis/internal/engine"
	"polis/internal/rules"
	"polis/internal/server"
	"polis/internal/store"
)

func main() {
	port := flag.Int("port", 8080, "server port")
	dbPath := flag.String("db", "polis.db", "path to the SQLite database")
	catalogPath := flag.String("catalog", "", "path to a JSON catalog (default: built-in base catalog)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	catalog := rules.BaseCatalog()
	if *catalogPath != "" {
		var err error
		catalog, err = rules.LoadFile(*catalogPath)
		if err != nil {
			log.Error("load catalog", "path", *catalogPath, "error", err)
			os.Exit(1)
		}
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Error("open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	srv := server.New(*port, catalog, engine.DefaultConfig(), db, log)
	if err := srv.Restore(); err != nil {
		log.Error("restore games", "error", err)
		os.Exit(1)
	}
	if err := srv.Start(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
