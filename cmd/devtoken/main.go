// Command devtoken prints a signed access token for local testing.
//
// Usage:
//
//	devtoken --user=<uuid> [--role=admin] [--ttl=1h]
//
// Requires AUTH_JWT_SECRET; AUTH_JWT_ISSUER defaults to records-api.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/records-api/internal/auth"
)

func main() {
	user := flag.String("user", "", "user uuid to put in the sub claim")
	role := flag.String("role", "user", "role claim: user or admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: devtoken --user=<uuid> [--role=admin] [--ttl=1h]")
		os.Exit(1)
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "records-api"
	}

	token, err := auth.NewJWTManager(secret, issuer).GenerateAccessToken(userID, *role, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
}
