package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"bents-gateway/config"
	"bents-gateway/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

const usage = `
Bents Gateway - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Apply all *.up.sql migrations
  down        Roll back all migrations using *.down.sql
  status      Show database connection and contacts table status
  seed-dev    Insert sample contact messages
  truncate    Delete every contact message (DANGEROUS)

Flags:
  -migrations string   Path to migrations directory (default "migrations")
  -contacts int        Number of sample contacts for seed-dev (default 3)

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go status
  go run cmd/migrate/main.go seed-dev -contacts 4
  go run cmd/migrate/main.go down
`

const contactsTable = "contacts"

func main() {
	migrationsDir := flag.String("migrations", "migrations", "Path to migrations directory")
	sampleContacts := flag.Int("contacts", database.DefaultSeedConfig().SampleContacts, "Number of sample contacts for seed-dev")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	ctx := context.Background()
	cfg := config.LoadConfig()
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer pool.Close()

	switch command {
	case "up":
		runMigrations(ctx, pool, *migrationsDir, database.Up)
	case "down":
		runMigrations(ctx, pool, *migrationsDir, database.Down)
	case "status":
		showStatus(ctx, pool)
	case "seed-dev":
		runSeedDevelopment(ctx, pool, *sampleContacts)
	case "truncate":
		runTruncate(ctx, pool)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		pool.Close()
		os.Exit(1)
	}
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string, direction database.Direction) {
	if direction == database.Up {
		log.Println("🚀 Running migrations UP...")
	} else {
		log.Println("⬇️  Rolling back migrations...")
	}

	err := database.ApplyMigrations(ctx, pool, migrationsDir, direction, func(name string) {
		log.Printf("   applied %s", name)
	})
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	log.Println("✅ Migrations completed successfully!")
}

func showStatus(ctx context.Context, pool *pgxpool.Pool) {
	log.Println("🔍 Checking database status...")

	if err := database.HealthCheck(ctx, pool); err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	log.Println("✅ Database connection: OK")

	exists, err := database.TableExists(ctx, pool, contactsTable)
	if err != nil {
		log.Printf("⚠️  Error checking table %s: %v", contactsTable, err)
		return
	}
	if !exists {
		log.Printf("❌ Table %-20s does not exist", contactsTable)
		return
	}
	count, err := database.TableCount(ctx, pool, contactsTable)
	if err != nil {
		log.Printf("⚠️  Error counting table %s: %v", contactsTable, err)
		return
	}
	log.Printf("✅ Table %-20s exists (%d rows)", contactsTable, count)
}

func runSeedDevelopment(ctx context.Context, pool *pgxpool.Pool, sampleContacts int) {
	log.Println("🌱 Seeding database (development mode)...")

	n, err := database.SeedContacts(ctx, pool, &database.SeedConfig{SampleContacts: sampleContacts})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✅ Inserted %d sample contact messages", n)
}

func runTruncate(ctx context.Context, pool *pgxpool.Pool) {
	log.Println("⚠️  WARNING: This will TRUNCATE the contacts table!")

	if err := database.TruncateContacts(ctx, pool); err != nil {
		log.Fatalf("❌ Truncate failed: %v", err)
	}

	log.Println("✅ Contacts truncated!")
}
