package loader

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// 初回起動時に投入する基準用尺 (m/着)。
var defaultStandards = []struct {
	ProductType   string
	Size          string
	Style         string
	FabricPerUnit float64
}{
	{"top", "standard", "regular", 1.5},
	{"trouser", "standard", "regular", 1.0},
	{"suit", "standard", "regular", 2.5},
}

var defaultUsers = []struct {
	Username string
	Password string
}{
	{"admin", "admin123"},
	{"user1", "password1"},
}

// InitDatabase はデータベーススキーマを適用し、初期データを投入します。
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Schema applied successfully.")

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for seeding: %w", err)
	}
	defer tx.Rollback()

	if err := seedFabricStandards(tx); err != nil {
		return fmt.Errorf("failed to seed fabric standards: %w", err)
	}
	if err := seedUsers(tx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}
	log.Println("Seed data checked.")

	return nil
}

// seedFabricStandards はテーブルが空のときだけ既定の基準用尺を投入します。
func seedFabricStandards(tx *sqlx.Tx) error {
	var count int
	if err := tx.Get(&count, `SELECT COUNT(*) FROM fabric_standards`); err != nil {
		return fmt.Errorf("failed to count fabric_standards: %w", err)
	}
	if count > 0 {
		return nil
	}

	const q = `
		INSERT INTO fabric_standards (product_type, size, style, fabric_per_unit)
		VALUES (?, ?, ?, ?)
	`
	for _, s := range defaultStandards {
		if _, err := tx.Exec(q, s.ProductType, s.Size, s.Style, s.FabricPerUnit); err != nil {
			return fmt.Errorf("failed to insert standard for %s: %w", s.ProductType, err)
		}
	}
	log.Printf("Seeded %d default fabric standards.", len(defaultStandards))
	return nil
}

func seedUsers(tx *sqlx.Tx) error {
	const q = `INSERT OR IGNORE INTO users (username, password) VALUES (?, ?)`
	for _, u := range defaultUsers {
		if _, err := tx.Exec(q, u.Username, u.Password); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.Username, err)
		}
	}
	return nil
}
