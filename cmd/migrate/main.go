// migrate aplica las migraciones SQL embebidas en internal/infrastructure/postgres/migrations
// sobre la base indicada por CONNECTIONSTRINGS_DEFAULT (o DATABASE_URL / DB_*).
//
// Uso: go run ./cmd/migrate [-list]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/warehouse-api/internal/infrastructure/postgres"
	"github.com/jhoicas/warehouse-api/pkg/config"
	"github.com/jhoicas/warehouse-api/pkg/logger"
)

func main() {
	list := flag.Bool("list", false, "solo listar las migraciones embebidas")
	flag.Parse()

	if *list {
		migrations, err := postgres.Migrations()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer migraciones: %v\n", err)
			os.Exit(1)
		}
		for _, m := range migrations {
			fmt.Println(m.Version)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Strs("applied", applied).Msg("migración fallida")
	}
	if len(applied) == 0 {
		log.Info().Msg("esquema al día")
		return
	}
	log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
}
