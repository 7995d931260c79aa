package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeAlias_Lowercases(t *testing.T) {
	assert.Equal(t, "build-server", SanitizeAlias("Build-Server"))
}

func TestSanitizeAlias_ReplacesUnsafeCharacters(t *testing.T) {
	tests := []struct {
		comment string
		want    string
	}{
		{"user/host", "user_host"},
		{"user:host", "user_host"},
		{`user\host`, "user_host"},
		{"user*host", "user_host"},
		{"user?host", "user_host"},
		{`user"host`, "user_host"},
		{"user<host>", "user_host_"},
		{"user|host", "user_host"},
		{"plain-name", "plain-name"},
		{"user@host", "user@host"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeAlias(tt.comment), "comment %q", tt.comment)
	}
}

func TestSanitizeAlias_Deterministic(t *testing.T) {
	comment := `Prod/DB:Primary*?"<>|`
	first := SanitizeAlias(comment)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SanitizeAlias(comment))
	}
}

func TestIdentityAlias_DerivedFromComment(t *testing.T) {
	id := Identity{KeyMaterial: "ssh-ed25519", KeyType: "AAAAC3Nza", Comment: "Build/Server"}
	assert.Equal(t, "build_server", id.Alias())
}

func TestIdentityExportLine(t *testing.T) {
	id := Identity{KeyMaterial: "ssh-ed25519", KeyType: "AAAAC3Nza", Comment: "build-server"}
	assert.Equal(t, "ssh-ed25519 AAAAC3Nza build-server", id.ExportLine())
}
