package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMigrationsDir(t *testing.T) {
	require.NoError(t, ValidateDir("migrations"))
}

func TestMigrationsSeedCounters(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	require.NoError(t, err)

	var countersSQL string
	for _, e := range entries {
		if strings.Contains(e.Name(), "create_counters") {
			b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
			require.NoError(t, err)
			countersSQL = string(b)
		}
	}

	require.NotEmpty(t, countersSQL, "counters migration missing")
	assert.Contains(t, countersSQL, "'order_number'")
	assert.Contains(t, countersSQL, "'serial_number'")
}

func TestCreateSQLMigrationWritesTemplate(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Promo Codes!")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_add_promo_codes.sql"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "-- +goose Up")
	assert.Contains(t, string(b), "-- +goose Down")

	require.NoError(t, ValidateDir(dir))
}
