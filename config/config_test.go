package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresFromEnv_AllSet(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_DBNAME", "stylus")
	t.Setenv("POSTGRES_USER", "stylus")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	conn, err := PostgresFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "host=db.internal port=5432 dbname=stylus user=stylus password=secret", conn.DSN())
}

func TestPostgresFromEnv_MissingVariable(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_DBNAME", "stylus")
	t.Setenv("POSTGRES_USER", "stylus")
	t.Setenv("POSTGRES_PASSWORD", "")

	_, err := PostgresFromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_PASSWORD")
}

func TestCanonicalizeEnvKey_AlignsWithYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"driver":     "sqlite",
			"sqlitePath": "dbo.db",
		},
	}

	assert.Equal(t, "database.sqlitePath", canonicalizeEnvKey("DATABASE_SQLITEPATH", existing))
	assert.Equal(t, "database.driver", canonicalizeEnvKey("DATABASE_DRIVER", existing))
	// Unknown segments pass through lowercased.
	assert.Equal(t, "database.unknown", canonicalizeEnvKey("DATABASE_UNKNOWN", existing))
}
