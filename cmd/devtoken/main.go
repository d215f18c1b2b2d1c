// Command devtoken prints a bearer token accepted by the course provider
// configured in the current directory or environment.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/waste3d/course-provider/config"
	"github.com/waste3d/course-provider/internal/infrastructure/security"

	flag "github.com/spf13/pflag"
)

func main() {
	subject := flag.String("sub", "dev", "token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	tokens, err := security.NewTokenManager([]byte(cfg.JWTSigningKey), cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		log.Fatalf("Token manager init failed: %v", err)
	}

	token, err := tokens.Issue(*subject, *ttl)
	if err != nil {
		log.Fatalf("Sign failed: %v", err)
	}
	fmt.Println(token)
}
