// internal/sync/sync.go
//
// Orkiestrator synchronizacji: Init -> Unlock -> FetchMetadata ->
// FetchIdentities -> Reconcile -> Report. Etapy są liniowe, każdy błąd
// etapu jest terminalny i nie cofa już zapisanych artefaktów.

package sync

import (
	"fmt"
	"os"
	"time"

	"sshVaultSync/internal/agent"
	"sshVaultSync/internal/config"
	apperr "sshVaultSync/internal/error"
	"sshVaultSync/internal/models"
	"sshVaultSync/internal/vault"

	"github.com/google/uuid"
)

// Report podsumowuje przebieg jednej synchronizacji. Processed liczy
// wszystkie tożsamości z agenta, Written tylko nowo dopisane bloki.
type Report struct {
	RunID     string
	Processed int
	Written   int
}

// VaultClient to operacje magazynu metadanych używane przez orkiestrator.
type VaultClient interface {
	Status() (vault.Status, error)
	Unlock(password string) (vault.Session, error)
	Sync(session vault.Session) error
	ListItems(session vault.Session) ([]vault.Item, error)
}

// PasswordFunc dostarcza hasło główne, gdy magazyn jest zablokowany.
type PasswordFunc func() (string, error)

// Syncer sekwencjonuje pełną synchronizację.
type Syncer struct {
	settings *config.Settings
	vault    VaultClient
	agent    agent.Provider
	password PasswordFunc
	logDebug func(string)
}

// New tworzy orkiestrator dla podanych ustawień i dostawców.
func New(settings *config.Settings, vaultClient VaultClient, agentProvider agent.Provider, password PasswordFunc) *Syncer {
	return &Syncer{
		settings: settings,
		vault:    vaultClient,
		agent:    agentProvider,
		password: password,
		logDebug: newDebugLogger(settings.DebugLogPath()),
	}
}

// Run wykonuje pełną synchronizację i zwraca raport.
func (s *Syncer) Run() (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	s.logDebug(fmt.Sprintf("=== Starting sync run %s ===", report.RunID))

	if err := config.Bootstrap(s.settings); err != nil {
		return nil, err
	}

	session, err := s.unlock()
	if err != nil {
		return nil, err
	}

	lookup, err := s.fetchMetadata(session)
	if err != nil {
		return nil, err
	}

	identities, err := s.fetchIdentities()
	if err != nil {
		return nil, err
	}

	writer := config.NewWriter(s.settings.ConfigPath(), s.settings.KeysDir())
	aliases, err := writer.Aliases()
	if err != nil {
		return nil, apperr.New(apperr.BootstrapError, "error reading existing config entries", err)
	}

	for _, id := range identities {
		written, err := s.reconcile(writer, aliases, lookup, id)
		if err != nil {
			return nil, err
		}
		report.Processed++
		if written {
			report.Written++
		}
	}

	s.logDebug(fmt.Sprintf("=== Sync run %s finished: %d processed, %d written ===",
		report.RunID, report.Processed, report.Written))
	return report, nil
}

// unlock sprawdza zamek magazynu i w razie potrzeby go odblokowuje.
// Token sesji wraca jako wartość i wędruje jawnie do dalszych wywołań.
func (s *Syncer) unlock() (vault.Session, error) {
	status, err := s.vault.Status()
	if err != nil {
		return "", err
	}

	if !status.Locked() {
		s.logDebug("vault already unlocked")
		return "", nil
	}

	password, err := s.password()
	if err != nil {
		return "", apperr.New(apperr.UnlockError, "error reading vault password", err)
	}

	session, err := s.vault.Unlock(password)
	if err != nil {
		return "", err
	}
	s.logDebug("vault unlocked, session token captured")
	return session, nil
}

func (s *Syncer) fetchMetadata(session vault.Session) (models.HostLookup, error) {
	if err := s.vault.Sync(session); err != nil {
		return nil, err
	}

	items, err := s.vault.ListItems(session)
	if err != nil {
		return nil, err
	}

	lookup := vault.BuildLookup(items, s.logDebug)
	s.logDebug(fmt.Sprintf("metadata lookup built: %d entries", len(lookup)))
	return lookup, nil
}

func (s *Syncer) fetchIdentities() ([]models.Identity, error) {
	raw, err := s.agent.Identities()
	if err != nil {
		return nil, err
	}

	identities := agent.ParseIdentities(raw)
	s.logDebug(fmt.Sprintf("agent returned %d identities", len(identities)))
	return identities, nil
}

// reconcile zapisuje artefakty jednej tożsamości. Klucz publiczny jest
// nadpisywany zawsze, blok konfiguracji tylko gdy aliasu jeszcze nie ma.
func (s *Syncer) reconcile(writer *config.Writer, aliases map[string]bool, lookup models.HostLookup, id models.Identity) (bool, error) {
	alias := id.Alias()
	keyPath := writer.KeyPath(alias)

	if err := writer.WriteKeyFile(keyPath, id); err != nil {
		return false, apperr.New(apperr.BootstrapError, "error exporting public key", err)
	}

	if aliases[alias] {
		s.logDebug(fmt.Sprintf("entry for %s already present, skipping", alias))
		return false, nil
	}

	entry := models.ResolveEntry(id, lookup, keyPath)
	if err := writer.AppendEntry(entry); err != nil {
		return false, apperr.New(apperr.BootstrapError, "error appending config entry", err)
	}

	aliases[alias] = true
	s.logDebug(fmt.Sprintf("entry for %s written (host %s)", alias, entry.Hostname))
	return true, nil
}

// newDebugLogger dopisuje wpisy diagnostyczne do pliku w katalogu wyjściowym.
func newDebugLogger(path string) func(string) {
	return func(message string) {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return
		}
		defer logFile.Close()

		timestamp := time.Now().Format("2006-01-02 15:04:05")
		fmt.Fprintf(logFile, "[%s] %s\n", timestamp, message)
	}
}
