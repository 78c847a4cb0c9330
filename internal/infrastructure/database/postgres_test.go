package database

import (
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestMigrationURL(t *testing.T) {
	url := migrationURL(config.DBConfig{Host: "db", Port: "5432", User: "edoc", Password: "p@ss:word", Name: "edoc"})
	assert.Equal(t, "pgx5://edoc:p%40ss%3Aword@db:5432/edoc?sslmode=disable", url)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel("development"))
	assert.Equal(t, logger.Warn, gormLogLevel("production"))
}
