package migrations_test

import (
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub/migrations"
)

func readUp(t *testing.T, version uint) string {
	t.Helper()

	src, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	body, _, err := src.ReadUp(version)
	require.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	return string(raw)
}

func TestPostgres_VersionsAreContiguous(t *testing.T) {
	src, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	require.NoError(t, err)

	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	for want := uint(2); ; want++ {
		next, err := src.Next(version)
		if err != nil {
			assert.Equal(t, uint(7), version)

			break
		}

		assert.Equal(t, want, next)
		version = next
	}
}

func TestPostgres_TeamsStartInactive(t *testing.T) {
	teams := readUp(t, 4)

	assert.Contains(t, teams, "DEFAULT 'Inactive'")
	assert.NotContains(t, teams, "DEFAULT 'Active'")
}

func TestPostgres_ContactRequestsTable(t *testing.T) {
	contact := readUp(t, 7)

	assert.Contains(t, contact, "CREATE TABLE IF NOT EXISTS contact_requests")
	assert.Contains(t, contact, "DEFAULT 'Pending'")
}
