// internal/vault/vault.go
//
// Klient zewnętrznego magazynu metadanych (CLI typu bw). Magazyn jest
// odblokowywany hasłem głównym, a token sesji przekazujemy jawnie do
// kolejnych wywołań - nigdy przez środowisko procesu.

package vault

import (
	"encoding/json"
	"os/exec"
	"strings"

	apperr "sshVaultSync/internal/error"
)

const (
	DefaultCommand = "bw"

	// ItemTypeSSHKey oznacza kategorię "SSH Key" w magazynie
	ItemTypeSSHKey = 5

	FieldHostName = "HostName"
	FieldUser     = "User"
)

// Session to token odblokowanej sesji magazynu.
type Session string

// Status opisuje stan zamka magazynu.
type Status struct {
	Status    string `json:"status"`
	UserEmail string `json:"userEmail,omitempty"`
	LastSync  string `json:"lastSync,omitempty"`
}

// Locked sprawdza czy magazyn wymaga odblokowania.
func (s Status) Locked() bool {
	return s.Status != "unlocked"
}

// Field to pojedyncze nazwane pole rekordu magazynu.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Item to rekord magazynu z kategorią i polami.
type Item struct {
	Name   string  `json:"name"`
	Type   int     `json:"type"`
	Fields []Field `json:"fields"`
}

// Client wykonuje operacje magazynu przez zewnętrzne polecenie.
type Client struct {
	command string
	run     func(name string, args ...string) ([]byte, error)
}

// NewClient tworzy klienta magazynu dla podanego polecenia.
func NewClient(command string) *Client {
	if command == "" {
		command = DefaultCommand
	}
	return &Client{
		command: command,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// Status odpytuje magazyn o stan zamka.
func (c *Client) Status() (Status, error) {
	out, err := c.run(c.command, "status")
	if err != nil {
		return Status{}, apperr.New(apperr.UnlockError, "error querying vault status", err)
	}

	var status Status
	if err := json.Unmarshal(out, &status); err != nil {
		return Status{}, apperr.New(apperr.UnlockError, "error parsing vault status", err)
	}
	return status, nil
}

// Unlock odblokowuje magazyn i zwraca token sesji.
func (c *Client) Unlock(password string) (Session, error) {
	out, err := c.run(c.command, "unlock", password, "--raw")
	if err != nil {
		return "", apperr.New(apperr.UnlockError, "error unlocking vault", err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", apperr.New(apperr.UnlockError, "vault returned an empty session token", nil)
	}
	return Session(token), nil
}

// Sync wyzwala synchronizację magazynu ze zdalnym serwerem.
func (c *Client) Sync(session Session) error {
	if _, err := c.run(c.command, withSession([]string{"sync"}, session)...); err != nil {
		return apperr.New(apperr.MetadataError, "error syncing vault", err)
	}
	return nil
}

// ListItems zwraca wszystkie rekordy magazynu.
func (c *Client) ListItems(session Session) ([]Item, error) {
	out, err := c.run(c.command, withSession([]string{"list", "items"}, session)...)
	if err != nil {
		return nil, apperr.New(apperr.MetadataError, "error listing vault items", err)
	}

	var items []Item
	if err := json.Unmarshal(out, &items); err != nil {
		return nil, apperr.New(apperr.MetadataError, "error parsing vault items", err)
	}
	return items, nil
}

// withSession dokleja token sesji do argumentów polecenia.
// Pusty token oznacza magazyn odblokowany już przed uruchomieniem.
func withSession(args []string, session Session) []string {
	if session == "" {
		return args
	}
	return append(args, "--session", string(session))
}
