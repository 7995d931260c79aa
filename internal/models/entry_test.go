package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEntry_WithMetadata(t *testing.T) {
	id := Identity{KeyMaterial: "ssh-ed25519", KeyType: "AAAA", Comment: "build-server"}
	lookup := HostLookup{
		"build-server": {Hostname: "10.0.0.5", User: "deploy"},
	}

	entry := ResolveEntry(id, lookup, "/keys/build-server.pub")

	assert.Equal(t, "build-server", entry.Alias)
	assert.Equal(t, "10.0.0.5", entry.Hostname)
	assert.Equal(t, "deploy", entry.User)
	assert.Equal(t, "/keys/build-server.pub", entry.IdentityFile)
}

func TestResolveEntry_NoMetadataFallsBackToComment(t *testing.T) {
	id := Identity{KeyMaterial: "ssh-ed25519", KeyType: "AAAA", Comment: "laptop-key"}

	entry := ResolveEntry(id, HostLookup{}, "/keys/laptop-key.pub")

	assert.Equal(t, "laptop-key", entry.Hostname)
	assert.Empty(t, entry.User)
}

func TestResolveEntry_EmptyHostnameTreatedAsMissing(t *testing.T) {
	// Rekord bez nazwy hosta nie wnosi też użytkownika
	id := Identity{KeyMaterial: "ssh-ed25519", KeyType: "AAAA", Comment: "laptop-key"}
	lookup := HostLookup{
		"laptop-key": {Hostname: "", User: "deploy"},
	}

	entry := ResolveEntry(id, lookup, "/keys/laptop-key.pub")

	assert.Equal(t, "laptop-key", entry.Hostname)
	assert.Empty(t, entry.User)
}

func TestConfigEntryRender_WithUser(t *testing.T) {
	entry := ConfigEntry{
		Alias:        "build-server",
		Hostname:     "10.0.0.5",
		IdentityFile: "/keys/build-server.pub",
		User:         "deploy",
	}

	want := "Host build-server\n" +
		"  HostName 10.0.0.5\n" +
		"  IdentityFile /keys/build-server.pub\n" +
		"  IdentitiesOnly yes\n" +
		"  User deploy\n"
	assert.Equal(t, want, entry.Render())
}

func TestConfigEntryRender_WithoutUser(t *testing.T) {
	entry := ConfigEntry{
		Alias:        "laptop-key",
		Hostname:     "laptop-key",
		IdentityFile: "/keys/laptop-key.pub",
	}

	rendered := entry.Render()
	assert.NotContains(t, rendered, "User")
	assert.Contains(t, rendered, "HostName laptop-key\n")
}
