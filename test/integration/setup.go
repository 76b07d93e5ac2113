package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stockroom/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema applies the application schema to the test database.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if err := database.Migrate(context.Background(), pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test product data and returns product IDs keyed by SKU.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) map[string]int {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		sku      string
		category string
		price    float64
		quantity int
		minStock int
	}{
		{"Widget", "W-1", "Tools", 9.99, 5, 10},
		{"Gadget", "G-7", "Tools", 24.50, 40, 10},
		{"Stapler", "S-3", "Office", 12.00, 0, 5},
		{"Monitor Stand", "M-2", "Office", 34.95, 12, 4},
		{"Label Printer", "L-9", "Electronics", 89.00, 7, 5},
	}

	ids := make(map[string]int, len(products))
	for _, p := range products {
		var id int
		err := pool.QueryRow(ctx,
			`INSERT INTO products (name, sku, category, price, quantity, min_stock, last_updated)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			p.name, p.sku, p.category, p.price, p.quantity, p.minStock, time.Now().UTC(),
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.sku, err)
		}
		ids[p.sku] = id
	}

	return ids
}

// SeedCategories inserts test category data into the database.
func SeedCategories(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	categories := []struct {
		name  string
		color string
	}{
		{"Tools", "#f59e0b"},
		{"Office", "#3b82f6"},
		{"Electronics", "#10b981"},
	}

	for _, c := range categories {
		_, err := pool.Exec(ctx,
			"INSERT INTO categories (name, color) VALUES ($1, $2)",
			c.name, c.color,
		)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", c.name, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"stock_transactions", "products", "categories"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
