package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sshVaultSync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter(t *testing.T) (*Writer, string) {
	t.Helper()
	tmpDir := t.TempDir()
	keysDir := filepath.Join(tmpDir, "keys")
	require.NoError(t, os.MkdirAll(keysDir, 0700))
	return NewWriter(filepath.Join(tmpDir, "config"), keysDir), tmpDir
}

func TestAliases_MissingFileIsEmpty(t *testing.T) {
	writer, _ := testWriter(t)

	aliases, err := writer.Aliases()
	require.NoError(t, err)
	assert.Empty(t, aliases)
}

func TestAliases_IgnoresWildcardAndUnrelatedLines(t *testing.T) {
	content := "# comment about Host prod\n" +
		"Host *\n  Port 22\n\n" +
		"Host build-server\n  HostName 10.0.0.5\n"

	aliases := parseAliases(content)

	assert.Equal(t, map[string]bool{"build-server": true}, aliases)
}

func TestAliases_BoundarySafe(t *testing.T) {
	// "prod" nie może dopasować się do istniejącego "prod-backup"
	content := "Host prod-backup\n  HostName 10.0.0.2\n"

	aliases := parseAliases(content)

	assert.False(t, aliases["prod"])
	assert.True(t, aliases["prod-backup"])
}

func TestAppendEntry_PreservesExistingContent(t *testing.T) {
	writer, tmpDir := testWriter(t)
	configPath := filepath.Join(tmpDir, "config")
	existing := "# hand-written notes\nHost legacy\n  HostName 192.168.1.10\n"
	require.NoError(t, os.WriteFile(configPath, []byte(existing), 0600))

	entry := models.ConfigEntry{
		Alias:        "build-server",
		Hostname:     "10.0.0.5",
		IdentityFile: writer.KeyPath("build-server"),
		User:         "deploy",
	}
	require.NoError(t, writer.AppendEntry(entry))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), existing),
		"existing lines must be byte-for-byte intact")
	assert.True(t, strings.HasSuffix(string(content), "\n"+entry.Render()))
}

func TestWriteKeyFile_AlwaysOverwrites(t *testing.T) {
	writer, _ := testWriter(t)
	id := models.Identity{KeyMaterial: "ssh-ed25519", KeyType: "AAAA", Comment: "build-server"}
	path := writer.KeyPath(id.Alias())

	require.NoError(t, writer.WriteKeyFile(path, id))

	rotated := models.Identity{KeyMaterial: "ssh-ed25519", KeyType: "BBBB", Comment: "build-server"}
	require.NoError(t, writer.WriteKeyFile(path, rotated))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh-ed25519 BBBB build-server\n", string(content))
}

func TestKeyPath_UsesAlias(t *testing.T) {
	writer, tmpDir := testWriter(t)
	assert.Equal(t, filepath.Join(tmpDir, "keys", "build-server.pub"), writer.KeyPath("build-server"))
}
