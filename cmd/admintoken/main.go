// Command admintoken mints a bearer token for the admin payments API.
//
//	ADMIN_JWT_SECRET=... admintoken -sub ops@example.com -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/internal/service"
)

func main() {
	sub := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("ADMIN_JWT_SECRET")
	if len(secret) < 32 {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET must be set and at least 32 bytes")
		os.Exit(1)
	}
	if *ttl <= 0 {
		fmt.Fprintln(os.Stderr, "-ttl must be positive")
		os.Exit(2)
	}

	token, err := service.NewAuthService(secret).IssueToken(*sub, domain.RoleAdmin, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
