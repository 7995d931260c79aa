// internal/agent/agent.go

package agent

import (
	"encoding/base64"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"

	apperr "sshVaultSync/internal/error"

	"golang.org/x/crypto/ssh/agent"
)

// Provider dostarcza surowe linie tożsamości z agenta SSH.
type Provider interface {
	Identities() (string, error)
}

// CommandProvider odpytuje agenta przez zewnętrzne polecenie (ssh-add -L).
type CommandProvider struct {
	command string
	args    []string
	run     func(name string, args ...string) ([]byte, error)
}

// NewCommandProvider tworzy dostawcę opartego o polecenie ssh-add.
func NewCommandProvider(command string, args ...string) *CommandProvider {
	if command == "" {
		command = "ssh-add"
	}
	if len(args) == 0 {
		args = []string{"-L"}
	}
	return &CommandProvider{
		command: command,
		args:    args,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// Identities zwraca surowe wyjście polecenia agenta.
func (p *CommandProvider) Identities() (string, error) {
	out, err := p.run(p.command, p.args...)
	if err != nil {
		// ssh-add kończy się kodem 1 również przy pustym agencie,
		// wtedy wyjście zawiera linię wartowniczą i nie jest to błąd
		if strings.HasPrefix(strings.TrimSpace(string(out)), NoIdentitiesSentinel) {
			return string(out), nil
		}
		return "", apperr.New(apperr.AgentError, "ssh agent query failed", err)
	}
	return string(out), nil
}

// SocketProvider odpytuje agenta bezpośrednio przez gniazdo SSH_AUTH_SOCK.
type SocketProvider struct {
	socketPath string
}

// NewSocketProvider tworzy dostawcę opartego o protokół agenta SSH.
func NewSocketProvider() *SocketProvider {
	return &SocketProvider{socketPath: os.Getenv("SSH_AUTH_SOCK")}
}

// Identities zwraca tożsamości agenta w tym samym formacie co ssh-add -L.
func (p *SocketProvider) Identities() (string, error) {
	if p.socketPath == "" {
		return "", apperr.New(apperr.AgentError, "SSH_AUTH_SOCK is not set", nil)
	}

	conn, err := net.Dial("unix", p.socketPath)
	if err != nil {
		return "", apperr.New(apperr.AgentError, "cannot connect to ssh agent", err)
	}
	defer conn.Close()

	keys, err := agent.NewClient(conn).List()
	if err != nil {
		return "", apperr.New(apperr.AgentError, "cannot list agent identities", err)
	}

	if len(keys) == 0 {
		return NoIdentitiesSentinel + ".\n", nil
	}

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s %s %s\n",
			key.Format,
			base64.StdEncoding.EncodeToString(key.Blob),
			key.Comment)
	}
	return b.String(), nil
}
