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
	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/auth"
	"server/internal/domain"
	"server/internal/infra"
)

// dogctl is the shelter back-office tool. It signs in through the same
// session manager the rest of the stack uses and requires an admin
// profile before running any command.
func main() {
	var (
		emailFlag    string
		passwordFlag string

		nameFlag  string
		photoFlag string
		storyFlag string
		usdFlag   float64
		idrFlag   float64
	)

	flag.StringVar(&emailFlag, "email", "", "admin email to sign in with")
	flag.StringVar(&passwordFlag, "password", "", "password (falls back to DOGCTL_PASSWORD)")
	flag.StringVar(&nameFlag, "name", "", "dog name (add)")
	flag.StringVar(&photoFlag, "photo", "", "photo URL (add)")
	flag.StringVar(&storyFlag, "story", "", "rescue story (add)")
	flag.Float64Var(&usdFlag, "usd", 0, "monthly sponsorship amount in USD (add)")
	flag.Float64Var(&idrFlag, "idr", 0, "monthly sponsorship amount in IDR (add)")
	flag.Parse()

	command := strings.TrimSpace(flag.Arg(0))
	if command == "" {
		exitWithError(errors.New("usage: dogctl [flags] <list|add|stats>"))
	}

	_ = godotenv.Load()
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}
	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		exitWithError(errors.New("JWT_SECRET is required"))
	}
	password := passwordFlag
	if password == "" {
		password = os.Getenv("DOGCTL_PASSWORD")
	}
	if emailFlag == "" || password == "" {
		exitWithError(errors.New("-email and a password are required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "dogctl").Logger()
	runner := infra.NewSQLRunner(pool, logger)
	dogs := repo.NewDogRepository(runner)
	profiles := repo.NewProfileRepository(runner)

	service := auth.NewService(auth.ServiceOptions{
		SQL:       runner,
		Logger:    logger,
		JWTSecret: jwtSecret,
	})
	manager := auth.NewManager(service, profiles, logger)
	defer manager.Close()

	snap, err := signIn(ctx, manager, emailFlag, password)
	if err != nil {
		exitWithError(err)
	}
	if snap.Profile == nil || !snap.Profile.IsAdmin() {
		exitWithError(errors.New("this tool requires an admin profile"))
	}
	defer func() {
		if err := manager.SignOut(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("sign-out failed")
		}
	}()

	switch command {
	case "list":
		err = listDogs(ctx, dogs)
	case "add":
		err = addDog(ctx, dogs, domain.DogInput{
			Name:             nameFlag,
			PhotoURL:         photoFlag,
			Story:            storyFlag,
			MonthlyAmountUSD: usdFlag,
			MonthlyAmountIDR: idrFlag,
		})
	case "stats":
		err = showStats(ctx, dogs)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		exitWithError(err)
	}
}

// signIn runs the sign-in through the manager and waits for it to reach
// the authenticated state with the profile loaded.
func signIn(ctx context.Context, manager *auth.Manager, email, password string) (auth.Snapshot, error) {
	ready := make(chan auth.Snapshot, 1)
	unsubscribe := manager.Subscribe(func(snap auth.Snapshot) {
		if snap.State == auth.StateAuthenticated {
			select {
			case ready <- snap:
			default:
			}
		}
	})
	defer unsubscribe()

	if err := manager.SignIn(ctx, email, password); err != nil {
		return auth.Snapshot{}, fmt.Errorf("sign-in failed: %w", err)
	}
	select {
	case snap := <-ready:
		return snap, nil
	case <-ctx.Done():
		return auth.Snapshot{}, ctx.Err()
	}
}

func listDogs(ctx context.Context, dogs domain.DogRepository) error {
	items, err := dogs.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dogs: %w", err)
	}
	for _, d := range items {
		sponsored := " "
		if d.IsSponsored {
			sponsored = "*"
		}
		fmt.Printf("%s %s  %-20s USD %8.2f  IDR %12.0f\n", sponsored, d.ID, d.Name, d.MonthlyAmountUSD, d.MonthlyAmountIDR)
	}
	fmt.Printf("%d dogs (* sponsored)\n", len(items))
	return nil
}

func addDog(ctx context.Context, dogs domain.DogRepository, in domain.DogInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	dog, err := dogs.Create(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to add dog: %w", err)
	}
	fmt.Printf("Added %s (%s)\n", dog.Name, dog.ID)
	return nil
}

func showStats(ctx context.Context, dogs domain.DogRepository) error {
	total, err := dogs.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count dogs: %w", err)
	}
	sponsored, err := dogs.CountSponsored(ctx)
	if err != nil {
		return fmt.Errorf("failed to count sponsored dogs: %w", err)
	}
	fmt.Printf("dogs: %d\nsponsored: %d\n", total, sponsored)
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
