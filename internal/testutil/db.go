// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/config"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory SQLite database with the shared models and
// any extra models migrated.
func NewDB(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{
		DBDriver: "sqlite",
		DBPath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.MigrateShared(db); err != nil {
		t.Fatalf("migrate shared: %v", err)
	}
	if err := database.MigrateModels(db, models); err != nil {
		t.Fatalf("migrate models: %v", err)
	}
	return db
}

// Config returns a config suitable for issuing and verifying test tokens.
func Config() *config.Config {
	return &config.Config{
		DBDriver:         "sqlite",
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		RateLimitMax:     1000,
		AuthRateLimitMax: 1000,
		CORSOrigins:      "*",
		AppEnv:           "test",
	}
}
