//go:build ignore

// This script mints an HS256 bearer token for the ingest endpoints.
// Run with: INGEST_JWT_SECRET=... go run scripts/generate-ingest-jwt.go -sub indexer -ttl 24h

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	sub := flag.String("sub", "indexer", "Token subject")
	iss := flag.String("iss", os.Getenv("INGEST_JWT_ISSUER"), "Token issuer, must match ingest.jwt_issuer when set")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	secret := os.Getenv("INGEST_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "INGEST_JWT_SECRET is not set")
		os.Exit(1)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   *sub,
		Issuer:    *iss,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", now.Add(*ttl).Format(time.RFC3339))
}
