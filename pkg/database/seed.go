package database

import (
	"context"
	"fmt"
	"log"

	"bents-gateway/internal/domain/contact"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	SampleContacts int
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{SampleContacts: 3}
}

var sampleContacts = []contact.Message{
	{Name: "Alice Johnson", Email: "alice@test.com", Subject: "Dust collection", Message: "Which cyclone separator do you use in the shop?"},
	{Name: "Bob Smith", Email: "bob@test.com", Subject: "Router table", Message: "Is there a cut list for the router table build?"},
	{Name: "Charlie Brown", Email: "charlie@test.com", Subject: "Finishing", Message: "What finish did you use on the workbench top?"},
	{Name: "Diana Prince", Email: "diana@test.com", Subject: "Clamps", Message: "Any recommendation for parallel clamps?"},
}

// SeedContacts inserts sample contact submissions for development.
func SeedContacts(ctx context.Context, db Execer, cfg *SeedConfig) (int, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	seeded := 0
	for i := 0; i < cfg.SampleContacts && i < len(sampleContacts); i++ {
		c := sampleContacts[i]
		if _, err := db.Exec(ctx,
			`INSERT INTO contacts (name, email, subject, message) VALUES ($1, $2, $3, $4)`,
			c.Name, c.Email, c.Subject, c.Message,
		); err != nil {
			return seeded, fmt.Errorf("failed to seed contact %s: %w", c.Email, err)
		}
		seeded++
		log.Printf("Contact seeded: %s", c.Email)
	}
	return seeded, nil
}

// TruncateContacts removes every contact row and resets the id sequence.
func TruncateContacts(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, `TRUNCATE TABLE contacts RESTART IDENTITY`)
	return err
}
