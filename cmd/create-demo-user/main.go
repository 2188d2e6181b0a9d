package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"legalclarify-backend/config"
	"legalclarify-backend/repository"
	"legalclarify-backend/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	email := flag.String("email", "demo@example.com", "account email")
	password := flag.String("password", "demopassword123", "account password")
	name := flag.String("name", "Demo Tenant", "display name")
	lang := flag.String("lang", "en", "preferred language code")
	flag.Parse()

	config.LoadDotEnv()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	users := service.NewUserService(service.UserWithRepository(repository.NewUserRepository(pool)))

	user, err := users.CreateUser(ctx, service.CreateUserRequest{
		Email:             *email,
		Password:          *password,
		Name:              *name,
		PreferredLanguage: *lang,
	})
	if errors.Is(err, service.ErrEmailTaken) {
		log.Printf("User with email %s already exists", *email)
		return
	}
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("✅ Demo user created successfully!\n")
	fmt.Printf("   ID: %s\n", user.ID)
	fmt.Printf("   Email: %s\n", user.Email)
	fmt.Printf("   Password: %s\n", *password)
	fmt.Printf("   Language: %s\n", user.PreferredLanguage)
}
