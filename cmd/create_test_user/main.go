package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"todo_api/internal/db"
	"todo_api/internal/domain"
	"todo_api/internal/repository"
	"todo_api/internal/service"
)

func main() {
	// expects DATABASE_URL env var
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	email := flag.String("email", "test@example.com", "user email")
	password := flag.String("password", "password1", "user password")
	flag.Parse()

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password failed: %v", err)
	}

	u := &domain.User{
		Email:          *email,
		HashedPassword: hash,
		IsActive:       true,
	}

	if err := repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			existing, err := repo.GetByEmail(ctx, *email)
			if err != nil {
				log.Fatalf("lookup user failed: %v", err)
			}
			log.Printf("user already exists id=%d\n", existing.ID)
			return
		}
		log.Fatalf("create user failed: %v", err)
	}

	log.Printf("user created id=%d email=%s\n", u.ID, u.Email)
}
