// Command gentoken mints a development JWT for an existing user so the API
// can be exercised without going through the login flow.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"freelanceflow/internal/auth"
	"freelanceflow/internal/config"
)

func main() {
	userIDFlag := flag.String("user", "", "user ID (UUID) to assert in the token")
	emailFlag := flag.String("email", "dev@example.com", "email to assert in the token")
	flag.Parse()

	if *userIDFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: gentoken -user <uuid> [-email <email>]")
		os.Exit(2)
	}

	userID, err := uuid.Parse(*userIDFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid user ID: %v\n", err)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	token, err := auth.NewJWTService(cfg.JWTSecret).GenerateAccessToken(userID, *emailFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
