// internal/models/entry.go

package models

import "strings"

// HostEntry przechowuje opcjonalne atrybuty połączenia z magazynu metadanych.
type HostEntry struct {
	Hostname string
	User     string
}

// HostLookup mapuje nazwę rekordu magazynu na atrybuty połączenia.
type HostLookup map[string]HostEntry

// ConfigEntry reprezentuje jeden blok konfiguracji SSH dla tożsamości.
type ConfigEntry struct {
	Alias        string
	Hostname     string
	IdentityFile string
	User         string
}

// ResolveEntry buduje wpis konfiguracyjny dla tożsamości.
// Rekord bez nazwy hosta traktujemy jak nieistniejący - wtedy nazwą hosta
// zostaje komentarz klucza, a użytkownik pozostaje pusty.
func ResolveEntry(id Identity, lookup HostLookup, identityFile string) ConfigEntry {
	entry := ConfigEntry{
		Alias:        id.Alias(),
		Hostname:     id.Comment,
		IdentityFile: identityFile,
	}

	if match, ok := lookup[id.Comment]; ok && match.Hostname != "" {
		entry.Hostname = match.Hostname
		entry.User = match.User
	}

	return entry
}

// Render zwraca tekst bloku konfiguracji dla wpisu.
func (e ConfigEntry) Render() string {
	var b strings.Builder
	b.WriteString("Host " + e.Alias + "\n")
	b.WriteString("  HostName " + e.Hostname + "\n")
	b.WriteString("  IdentityFile " + e.IdentityFile + "\n")
	b.WriteString("  IdentitiesOnly yes\n")
	if e.User != "" {
		b.WriteString("  User " + e.User + "\n")
	}
	return b.String()
}
