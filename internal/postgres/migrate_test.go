package postgres

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMigrations(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintMigrations(&out))

	sql := out.String()
	assert.Contains(t, sql, "-- migrations/0001_init.up.sql")
	for _, table := range []string{
		"organizations",
		"app_users",
		"organization_app_users",
		"branches",
		"products",
		"redemptions",
		"push_notifications",
		"push_notification_recipients",
		"permissions",
	} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.NotContains(t, sql, "DROP TABLE")
}
