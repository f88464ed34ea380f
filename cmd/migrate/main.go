package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/codexa/backend/internal/config"
	"github.com/codexa/backend/internal/logging"
	"github.com/codexa/backend/migrations"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up          apply pending migrations and seed the bootstrap admin (default)
  down        roll back the most recent migration
  status      print migration status`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("open database failed", "error", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		logging.Fatal("set migration dialect failed", "error", err)
	}

	ctx := context.Background()
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := goose.UpContext(ctx, db, "."); err != nil {
			logging.Fatal("migrate up failed", "error", err)
		}
		if err := seedAdmin(ctx, db, cfg); err != nil {
			logging.Fatal("seed admin failed", "error", err)
		}
	case "down":
		if err := goose.DownContext(ctx, db, "."); err != nil {
			logging.Fatal("migrate down failed", "error", err)
		}
	case "status":
		if err := goose.StatusContext(ctx, db, "."); err != nil {
			logging.Fatal("migrate status failed", "error", err)
		}
	default:
		usage()
	}
}

// seedAdmin creates the bootstrap admin profile from ADMIN_EMAIL and
// ADMIN_PASSWORD. Only the bcrypt hash of the password is stored. Skipped
// when the variables are unset or the profile already exists.
func seedAdmin(ctx context.Context, db *sql.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Info("no bootstrap admin configured, skipping seed")
		return nil
	}

	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM profiles WHERE email = $1)`, cfg.AdminEmail).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		slog.Info("bootstrap admin already present", "email", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO profiles (id, email, password_hash, role) VALUES ($1, $2, $3, 'admin')`,
		uuid.NewString(), cfg.AdminEmail, string(hash))
	if err != nil {
		return err
	}
	slog.Info("bootstrap admin created", "email", cfg.AdminEmail)
	return nil
}
