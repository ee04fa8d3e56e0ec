// Command admin-token issues a signed access token for the admin API.
// Admin accounts are provisioned out of band; this is how operators obtain
// a token for one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/auth"
	"github.com/heartmarshall/cultour-backend/internal/config"
	"github.com/heartmarshall/cultour-backend/internal/domain"
)

func main() {
	subject := flag.String("subject", "", "user id to embed in the token (random when empty)")
	role := flag.String("role", string(domain.UserRoleAdmin), "role claim")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to the configured access token TTL)")
	flag.Parse()

	cfg, err := config.LoadAuth()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if !domain.UserRole(*role).IsValid() {
		log.Fatalf("unknown role %q", *role)
	}

	userID := uuid.New()
	if *subject != "" {
		if userID, err = uuid.Parse(*subject); err != nil {
			log.Fatalf("parse subject: %v", err)
		}
	}

	lifetime := cfg.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	manager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)

	token, err := manager.IssueToken(userID, *role, lifetime)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintln(os.Stdout, token)
}
