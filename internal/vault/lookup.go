// internal/vault/lookup.go

package vault

import (
	"fmt"

	"sshVaultSync/internal/models"
)

// BuildLookup filtruje rekordy kategorii SSH i buduje mapę nazwa -> atrybuty.
// Przy powtórzonej nazwie wygrywa późniejszy rekord; nadpisanie trafia do logu.
func BuildLookup(items []Item, logDebug func(string)) models.HostLookup {
	lookup := make(models.HostLookup)

	for _, item := range items {
		if item.Type != ItemTypeSSHKey {
			continue
		}

		if _, exists := lookup[item.Name]; exists && logDebug != nil {
			logDebug(fmt.Sprintf("duplicate vault item name %q, later record wins", item.Name))
		}

		entry := models.HostEntry{}
		for _, field := range item.Fields {
			switch field.Name {
			case FieldHostName:
				entry.Hostname = field.Value
			case FieldUser:
				entry.User = field.Value
			}
		}
		lookup[item.Name] = entry
	}

	return lookup
}
