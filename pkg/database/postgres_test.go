package database

import (
	"autoOpsAI/pkg/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		Host: "db", Port: "5433", User: "ops", Password: "pw", Name: "autoops", SSLMode: "require",
	})

	assert.Equal(t, "host=db port=5433 user=ops password=pw dbname=autoops sslmode=require TimeZone=UTC", got)
}

func TestGormConfig(t *testing.T) {
	cfg := GormConfig("production")

	assert.True(t, cfg.SkipDefaultTransaction)
	assert.Equal(t, "UTC", cfg.NowFunc().Location().String())
}
