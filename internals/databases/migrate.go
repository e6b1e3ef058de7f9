package database

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"harmonia_backend/internals/configs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica as migrações embutidas antes do servidor aceitar tráfego.
func Migrate(cfg *configs.Config) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		log.Fatalf("❌ Falha ao carregar migrações: %v", err)
	}

	url := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode,
	)

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		log.Fatalf("❌ Falha ao iniciar migrador: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("❌ Falha ao aplicar migrações: %v", err)
	}
	log.Println("✅ Migrações aplicadas.")
}
