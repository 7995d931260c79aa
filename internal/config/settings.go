// internal/config/settings.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	apperr "sshVaultSync/internal/error"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDirName    = ".config/sshvs"
	DefaultSettingsFileName = "settings.yaml"
	DefaultConfigFileName   = "config"
	DefaultKeysDirName      = "keys"
	DefaultLinkDirName      = ".ssh"
	DefaultFilePerms        = 0600
	DefaultDirPerms         = 0700
	DebugLogFileName        = "sshvs_debug.log"

	// EnvPrefix to przedrostek zmiennych środowiskowych nadpisujących ustawienia
	EnvPrefix = "sshvs"
)

// Settings przechowuje ustawienia działania programu. Wartości z pliku YAML
// są nadpisywane przez zmienne środowiskowe SSHVS_*.
type Settings struct {
	OutputDir     string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LinkPath      string `yaml:"link_path" envconfig:"LINK_PATH"`
	VaultCommand  string `yaml:"vault_command" envconfig:"VAULT_COMMAND"`
	AgentCommand  string `yaml:"agent_command" envconfig:"AGENT_COMMAND"`
	VaultPassword string `yaml:"-" envconfig:"VAULT_PASSWORD"`
}

// DefaultSettings zwraca ustawienia domyślne oparte o katalog domowy.
func DefaultSettings() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get home directory: %v", err)
	}

	return &Settings{
		OutputDir:    filepath.Join(homeDir, DefaultOutputDirName),
		LinkPath:     filepath.Join(homeDir, DefaultLinkDirName, DefaultConfigFileName),
		VaultCommand: "bw",
		AgentCommand: "ssh-add",
	}, nil
}

// LoadSettings wczytuje ustawienia z pliku YAML i nakłada środowisko.
// Brak pliku nie jest błędem - działają wtedy wartości domyślne.
func LoadSettings(path string) (*Settings, error) {
	settings, err := DefaultSettings()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = filepath.Join(settings.OutputDir, DefaultSettingsFileName)
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %v", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read settings file: %v", err)
	}

	if err := envconfig.Process(EnvPrefix, settings); err != nil {
		return nil, fmt.Errorf("failed to process environment settings: %v", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate sprawdza kompletność ustawień.
func (s *Settings) Validate() error {
	if s.OutputDir == "" {
		return apperr.New(apperr.ValidationError, "output directory cannot be empty", nil)
	}
	if s.LinkPath == "" {
		return apperr.New(apperr.ValidationError, "link path cannot be empty", nil)
	}
	if s.VaultCommand == "" {
		return apperr.New(apperr.ValidationError, "vault command cannot be empty", nil)
	}
	if s.AgentCommand == "" {
		return apperr.New(apperr.ValidationError, "agent command cannot be empty", nil)
	}
	return nil
}

// ConfigPath zwraca ścieżkę generowanego pliku konfiguracyjnego.
func (s *Settings) ConfigPath() string {
	return filepath.Join(s.OutputDir, DefaultConfigFileName)
}

// KeysDir zwraca katalog eksportowanych kluczy publicznych.
func (s *Settings) KeysDir() string {
	return filepath.Join(s.OutputDir, DefaultKeysDirName)
}

// DebugLogPath zwraca ścieżkę pliku logów diagnostycznych.
func (s *Settings) DebugLogPath() string {
	return filepath.Join(s.OutputDir, DebugLogFileName)
}
