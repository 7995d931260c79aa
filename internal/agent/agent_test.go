package agent

import (
	"errors"
	"testing"

	apperr "sshVaultSync/internal/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandProvider_ReturnsOutput(t *testing.T) {
	provider := NewCommandProvider("ssh-add", "-L")
	provider.run = func(name string, args ...string) ([]byte, error) {
		assert.Equal(t, "ssh-add", name)
		assert.Equal(t, []string{"-L"}, args)
		return []byte("ssh-ed25519 AAAA build-server\n"), nil
	}

	raw, err := provider.Identities()
	require.NoError(t, err)
	assert.Equal(t, "ssh-ed25519 AAAA build-server\n", raw)
}

func TestCommandProvider_EmptyAgentIsNotAnError(t *testing.T) {
	// ssh-add -L kończy się kodem 1 także, gdy agent nie ma kluczy
	provider := NewCommandProvider("ssh-add", "-L")
	provider.run = func(name string, args ...string) ([]byte, error) {
		return []byte("The agent has no identities.\n"), errors.New("exit status 1")
	}

	raw, err := provider.Identities()
	require.NoError(t, err)
	assert.Empty(t, ParseIdentities(raw))
}

func TestCommandProvider_FailureIsAgentError(t *testing.T) {
	provider := NewCommandProvider("ssh-add", "-L")
	provider.run = func(name string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 2")
	}

	_, err := provider.Identities()
	require.Error(t, err)
	assert.Equal(t, apperr.AgentError, apperr.GetType(err))
}

func TestSocketProvider_MissingSocketIsAgentError(t *testing.T) {
	provider := &SocketProvider{socketPath: ""}

	_, err := provider.Identities()
	require.Error(t, err)
	assert.Equal(t, apperr.AgentError, apperr.GetType(err))
}
