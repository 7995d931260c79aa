// internal/agent/parser.go

package agent

import (
	"bufio"
	"strings"

	"sshVaultSync/internal/models"
)

// NoIdentitiesSentinel to początek komunikatu agenta bez załadowanych kluczy.
const NoIdentitiesSentinel = "The agent has no identities"

// ParseIdentities zamienia surowe wyjście agenta na listę tożsamości.
// Linie puste, wartownicze i niekompletne są pomijane bez błędu.
func ParseIdentities(raw string) []models.Identity {
	var identities []models.Identity

	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, NoIdentitiesSentinel) {
			continue
		}

		// Komentarz może zawierać spacje, więc łapiemy go jako resztę linii
		fields := strings.SplitN(line, " ", 3)
		if len(fields) < 3 {
			continue
		}

		identities = append(identities, models.Identity{
			KeyMaterial: fields[0],
			KeyType:     fields[1],
			Comment:     strings.TrimSpace(fields[2]),
		})
	}

	return identities
}
