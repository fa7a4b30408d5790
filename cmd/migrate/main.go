// migrate applies the embedded SQL schema: go run ./cmd/migrate -direction up
package main

import (
	"flag"
	"fmt"
	"os"

	"guestpass/config"
	"guestpass/internal/db/migrate"
)

func main() {
	direction := flag.String("direction", migrate.DirectionUp, "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	dsn := ""
	if cfg.Migrate != nil {
		dsn = cfg.Migrate.DatabaseURL
	}

	if err := migrate.Run(dsn, *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
