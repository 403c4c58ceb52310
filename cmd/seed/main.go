// Command seed creates or resets the per-kabupaten dashboard accounts.
// Passwords are hashed with the same argon2 parameters the API uses, so
// seeding never requires precomputed hashes in SQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Ryzeria/samikna-website-sub001/internal/config"
	"github.com/Ryzeria/samikna-website-sub001/pkg/hash"
)

var defaultKabupaten = []string{"bangkalan", "sampang", "pamekasan", "sumenep"}

func main() {
	password := flag.String("password", "", "initial password for all seeded accounts (required)")
	kabupatenList := flag.String("kabupaten", strings.Join(defaultKabupaten, ","), "comma-separated kabupaten names")
	flag.Parse()

	if *password == "" {
		log.Fatal("missing -password flag")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	passwordHash, err := hash.Password(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range strings.Split(*kabupatenList, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		query := `
			INSERT INTO users (username, email, password_hash, full_name, kabupaten, role, is_active)
			VALUES ($1, $2, $3, $4, $5, 'admin', true)
			ON CONFLICT (LOWER(username)) DO UPDATE
			SET password_hash = EXCLUDED.password_hash,
				is_active = true,
				updated_at = NOW()`

		email := fmt.Sprintf("admin@%s.samikna.id", name)
		fullName := fmt.Sprintf("Admin Kabupaten %s", titleCase(name))

		if _, err := db.ExecContext(ctx, query, name, email, passwordHash, fullName, name); err != nil {
			log.Fatalf("Failed to seed user %s: %v", name, err)
		}

		log.Printf("✓ Seeded account %s", name)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
