// internal/config/writer.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sshVaultSync/internal/models"
)

// Writer zarządza wpisami w wygenerowanym pliku konfiguracyjnym.
// Plik jest wyłącznie dopisywany - istniejące linie nigdy nie są
// przepisywane ani przestawiane.
type Writer struct {
	configPath string
	keysDir    string
}

// NewWriter tworzy zapisywacza dla pliku konfiguracyjnego i katalogu kluczy.
func NewWriter(configPath, keysDir string) *Writer {
	return &Writer{
		configPath: configPath,
		keysDir:    keysDir,
	}
}

// Aliases zwraca zbiór aliasów obecnych w pliku konfiguracyjnym.
// Plik dzielimy na bloki po dokładnym tokenie za "Host", więc alias
// nie dopasuje się jako przedrostek dłuższej nazwy.
func (w *Writer) Aliases() (map[string]bool, error) {
	content, err := os.ReadFile(w.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	return parseAliases(string(content)), nil
}

func parseAliases(content string) map[string]bool {
	aliases := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Host ") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, "Host "))
		if name == "" || name == "*" {
			continue
		}
		aliases[name] = true
	}
	return aliases
}

// KeyPath zwraca ścieżkę eksportowanego klucza publicznego dla aliasu.
func (w *Writer) KeyPath(alias string) string {
	return filepath.Join(w.keysDir, alias+".pub")
}

// WriteKeyFile zapisuje eksportowany klucz publiczny tożsamości.
// Plik jest zawsze nadpisywany - materiał klucza mógł się zmienić nawet
// gdy wpis konfiguracyjny już istnieje.
func (w *Writer) WriteKeyFile(path string, id models.Identity) error {
	if err := os.WriteFile(path, []byte(id.ExportLine()+"\n"), DefaultFilePerms); err != nil {
		return fmt.Errorf("failed to write key file %s: %v", path, err)
	}
	return nil
}

// AppendEntry dopisuje nowy blok na końcu pliku, poprzedzony pustą linią.
func (w *Writer) AppendEntry(entry models.ConfigEntry) error {
	f, err := os.OpenFile(w.configPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, DefaultFilePerms)
	if err != nil {
		return fmt.Errorf("failed to open config file: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + entry.Render()); err != nil {
		return fmt.Errorf("failed to append config entry: %v", err)
	}
	return nil
}
