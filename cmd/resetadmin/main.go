// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/AaryaRajwade/SE-RMS/internal/config"
	"github.com/AaryaRajwade/SE-RMS/internal/core"
	"github.com/AaryaRajwade/SE-RMS/internal/user"
)

// Maintenance tool that force-resets an admin account: promotes the named
// user to an approved, unbanned admin with a fresh password. Run against
// the same database as the API.
func main() {
	configPath := flag.String("config", "", "path to config file")
	username := flag.String("username", "admin", "admin account username")
	password := flag.String(
		"password",
		"",
		"new admin password (generated when empty)",
	)
	flag.Parse()

	if err := run(*configPath, *username, *password); err != nil {
		slog.Error("reset failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, username, password string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	generated := false
	if password == "" {
		password, err = core.GenerateSecureToken(16)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	hash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	repo := user.NewRepository(db.DB)
	if err := repo.ResetAdmin(ctx, username, hash); err != nil {
		return fmt.Errorf("reset admin %q: %w", username, err)
	}

	fmt.Printf("admin %q reset\n", username)
	if generated {
		// Printed once, never logged.
		fmt.Printf("generated password: %s\n", password)
	}

	return nil
}
