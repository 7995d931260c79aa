// internal/config/bootstrap.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperr "sshVaultSync/internal/error"
)

const (
	// BackupTimeFormat to sygnatura czasowa w nazwie kopii zapasowej
	BackupTimeFormat = "20060102_150405"

	defaultHostToken = "Host *"
	defaultHostBlock = "Host *\n  Port 22\n  AddKeysToAgent yes\n"
)

// Bootstrap przygotowuje katalogi, plik konfiguracyjny i dowiązanie.
// Istniejący plik jest kopiowany do kopii zapasowej z sygnaturą czasową,
// a plik roboczy zostaje na miejscu - wcześniejsza zawartość przeżywa
// kolejne uruchomienia bez zmian.
func Bootstrap(settings *Settings) error {
	if err := os.MkdirAll(settings.OutputDir, DefaultDirPerms); err != nil {
		return apperr.New(apperr.BootstrapError, "failed to create output directory", err)
	}
	if err := os.MkdirAll(settings.KeysDir(), DefaultDirPerms); err != nil {
		return apperr.New(apperr.BootstrapError, "failed to create keys directory", err)
	}

	configPath := settings.ConfigPath()
	content, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		backupPath := filepath.Join(settings.OutputDir,
			fmt.Sprintf("%s_%s.bak", DefaultConfigFileName, time.Now().Format(BackupTimeFormat)))
		if err := os.WriteFile(backupPath, content, DefaultFilePerms); err != nil {
			return apperr.New(apperr.BootstrapError, "failed to create config backup", err)
		}

		// Blok domyślny dokładamy tylko raz, przed istniejącą zawartością
		if !strings.Contains(string(content), defaultHostToken) {
			merged := defaultHostBlock + "\n" + string(content)
			if err := os.WriteFile(configPath, []byte(merged), DefaultFilePerms); err != nil {
				return apperr.New(apperr.BootstrapError, "failed to inject default host block", err)
			}
		}

	case errors.Is(err, os.ErrNotExist):
		if err := os.WriteFile(configPath, []byte(defaultHostBlock), DefaultFilePerms); err != nil {
			return apperr.New(apperr.BootstrapError, "failed to create config file", err)
		}

	default:
		return apperr.New(apperr.BootstrapError, "failed to read config file", err)
	}

	return linkConfig(configPath, settings.LinkPath)
}

// linkConfig wystawia konfigurację pod konwencjonalną ścieżką przez twarde
// dowiązanie, zastępując wcześniejszy wpis.
func linkConfig(configPath, linkPath string) error {
	if err := os.MkdirAll(filepath.Dir(linkPath), DefaultDirPerms); err != nil {
		return apperr.New(apperr.BootstrapError, "failed to create link directory", err)
	}

	if _, err := os.Lstat(linkPath); err == nil {
		if err := os.Remove(linkPath); err != nil {
			return apperr.New(apperr.BootstrapError, "failed to remove existing link target", err)
		}
	}

	if err := os.Link(configPath, linkPath); err != nil {
		return apperr.New(apperr.BootstrapError, "failed to link config file", err)
	}
	return nil
}
