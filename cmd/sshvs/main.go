package main

import (
	"fmt"
	"os"

	"sshVaultSync/internal/agent"
	"sshVaultSync/internal/config"
	syncer "sshVaultSync/internal/sync"
	"sshVaultSync/internal/ui/views"
	"sshVaultSync/internal/vault"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagSettings string
	flagPlain    bool
	flagSocket   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sshvs",
		Short:         "Sync ssh-agent identities and vault metadata into an SSH client config",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "",
		"Path to settings file (default <output dir>/settings.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false,
		"Plain terminal password prompt instead of the full-screen one")
	rootCmd.PersistentFlags().BoolVar(&flagSocket, "agent-socket", false,
		"Query the agent over SSH_AUTH_SOCK instead of running ssh-add")

	rootCmd.AddCommand(newSyncCmd(), newStatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run the full synchronization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(flagSettings)
			if err != nil {
				return err
			}

			s := syncer.New(
				settings,
				vault.NewClient(settings.VaultCommand),
				agentProvider(settings),
				passwordFunc(settings),
			)

			report, err := s.Run()
			if err != nil {
				return err
			}

			fmt.Printf("Sync %s complete: %d identities processed, %d new entries written\n",
				report.RunID, report.Processed, report.Written)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show vault lock state and agent identity count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(flagSettings)
			if err != nil {
				return err
			}

			status, err := vault.NewClient(settings.VaultCommand).Status()
			if err != nil {
				return err
			}
			state := "unlocked"
			if status.Locked() {
				state = "locked"
			}
			fmt.Printf("Vault: %s\n", state)

			raw, err := agentProvider(settings).Identities()
			if err != nil {
				return err
			}
			fmt.Printf("Agent identities: %d\n", len(agent.ParseIdentities(raw)))
			return nil
		},
	}
}

func agentProvider(settings *config.Settings) agent.Provider {
	if flagSocket {
		return agent.NewSocketProvider()
	}
	return agent.NewCommandProvider(settings.AgentCommand, "-L")
}

// passwordFunc wybiera źródło hasła głównego: zmienną środowiskową,
// zwykły odczyt z terminala albo pełnoekranowy widok odblokowania.
func passwordFunc(settings *config.Settings) syncer.PasswordFunc {
	return func() (string, error) {
		if settings.VaultPassword != "" {
			return settings.VaultPassword, nil
		}

		if flagPlain || !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Print("Enter vault master password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return "", fmt.Errorf("could not read password: %v", err)
			}
			return string(password), nil
		}

		return views.PromptMasterPassword(settings.VaultCommand)
	}
}
