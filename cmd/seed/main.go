package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/369Dsharma/Notes-backend/config"
	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	fullName := "Demo User"
	hash, err := helpers.BcryptHasher{}.Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, full_name, auth_provider, email_verified)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, email, hash, fullName, entity.ProviderLocal).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	notes := []struct {
		title   string
		content string
		tags    []string
		pinned  bool
	}{
		{"Welcome", "This is your first note. Pin the important ones.", []string{"intro"}, true},
		{"Shopping list", "Milk, eggs, coffee", []string{"errands"}, false},
		{"Ideas", "Write down ideas as they come.", nil, false},
	}
	for _, n := range notes {
		if _, err := db.Exec(`
			INSERT INTO notes (user_id, title, content, tags, is_pinned)
			VALUES ($1, $2, $3, $4, $5)
		`, id, n.title, n.content, nonNullTags(n.tags), n.pinned); err != nil {
			log.Fatalf("failed to seed note %q: %v", n.title, err)
		}
	}
	fmt.Printf("seeded %d notes\n", len(notes))
}

// nonNullTags keeps tag inserts compatible with the NOT NULL tags column.
func nonNullTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
