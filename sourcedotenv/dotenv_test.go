package sourcedotenv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halyard-go/halyard"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDotenvSource_Collect(t *testing.T) {
	path := writeEnvFile(t, `
# local overrides
HOST=localhost
DATABASE__HOST=db.local
DB_MAX_CONNECTIONS=100
QUOTED="with spaces"
`)

	src := New(path, Options{})
	result, err := src.Collect(context.Background())
	require.NoError(t, err)

	host, ok := result.Str("host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	dbHost, ok := result.Str("database.host")
	require.True(t, ok)
	assert.Equal(t, "db.local", dbHost)

	// Single underscores are preserved within a segment.
	maxConns, ok := result.Str("db_max_connections")
	require.True(t, ok)
	assert.Equal(t, "100", maxConns)

	quoted, ok := result.Str("quoted")
	require.True(t, ok)
	assert.Equal(t, "with spaces", quoted)

	value, ok := result.Lookup("host")
	require.True(t, ok)
	assert.Equal(t, "dotenv:.env", value.Origin())
}

func TestDotenvSource_Collect_TryParsing(t *testing.T) {
	path := writeEnvFile(t, `
DEBUG=true
PORT=8080
RATIO=0.25
NAME=hello
`)

	src := New(path, Options{TryParsing: true})
	result, err := src.Collect(context.Background())
	require.NoError(t, err)

	debug, ok := result.Bool("debug")
	require.True(t, ok)
	assert.True(t, debug)

	port, ok := result.Int("port")
	require.True(t, ok)
	assert.Equal(t, int64(8080), port)

	ratio, ok := result.Float("ratio")
	require.True(t, ok)
	assert.Equal(t, 0.25, ratio)

	name, ok := result.Str("name")
	require.True(t, ok)
	assert.Equal(t, "hello", name)
}

func TestDotenvSource_Collect_MissingOptional(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), ".env"), Options{})
	result, err := src.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDotenvSource_Collect_MissingRequired(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), ".env"), Options{Required: true})
	_, err := src.Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dotenv file")
}

func TestDotenvSource_Name(t *testing.T) {
	src := New("/srv/app/.env.local", Options{})
	assert.Equal(t, "dotenv:.env.local", src.Name())
}

func TestDotenvSource_Watch(t *testing.T) {
	src := New(".env", Options{})
	ch, err := src.Watch(context.Background())
	assert.ErrorIs(t, err, halyard.ErrWatchNotSupported)
	assert.Nil(t, ch)
}
