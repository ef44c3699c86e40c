// Command token-generator mints bearer tokens for local development against
// a server running with auth.provider=jwt.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

func main() {
	lifetime := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-ttl 1h] email [email...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Auth.Provider != config.ProviderJWT {
		log.Fatalf("auth.provider is %q; tokens can only be minted for %q", cfg.Auth.Provider, config.ProviderJWT)
	}

	verifier, err := auth.NewJWTVerifier(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}

	for _, email := range flag.Args() {
		token, err := verifier.Sign(context.Background(), auth.Identity{Subject: email, Email: email}, *lifetime)
		if err != nil {
			fmt.Printf("Error generating token for %s: %v\n", email, err)
			continue
		}
		fmt.Printf("Email: %s\nAuthorization: Bearer %s\n\n", email, token)
	}
}
