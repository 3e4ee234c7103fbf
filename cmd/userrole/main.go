package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
)

func main() {
	var (
		idFlag    string
		emailFlag string
		roleFlag  string
	)

	flag.StringVar(&idFlag, "id", "", "profile ID to update (UUID)")
	flag.StringVar(&emailFlag, "email", "", "profile email to update")
	flag.StringVar(&roleFlag, "role", "admin", "role to assign (donor, admin)")
	flag.Parse()

	userID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(emailFlag)
	role := domain.UserRole(strings.TrimSpace(strings.ToLower(roleFlag)))

	if userID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}
	switch role {
	case domain.UserRoleDonor, domain.UserRoleAdmin:
	default:
		exitWithError(fmt.Errorf("unsupported role %q", role))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "userrole").Logger()
	profiles := repo.NewProfileRepository(infra.NewSQLRunner(pool, logger))

	var profile *domain.Profile
	if userID != "" {
		profile, err = profiles.GetByID(ctx, userID)
	} else {
		profile, err = profiles.GetByEmail(ctx, email)
	}
	if err != nil {
		exitWithError(fmt.Errorf("failed to load profile: %w", err))
	}

	updated, err := profiles.SetRole(ctx, profile.ID, role)
	if err != nil {
		exitWithError(fmt.Errorf("failed to update role: %w", err))
	}

	fmt.Printf("Profile %s (%s) updated to role %s\n", updated.ID, updated.Email, updated.Role)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
