// internal/models/identity.go

package models

import "strings"

// Identity reprezentuje jeden klucz załadowany w agencie SSH.
// Komentarz jest naturalnym kluczem łączącym z magazynem metadanych.
type Identity struct {
	KeyMaterial string `json:"key_material"`
	KeyType     string `json:"key_type"`
	Comment     string `json:"comment"`
}

// Alias zwraca bezpieczną nazwę wyprowadzoną z komentarza klucza.
func (i Identity) Alias() string {
	return SanitizeAlias(i.Comment)
}

// ExportLine zwraca treść eksportowanego pliku klucza publicznego.
func (i Identity) ExportLine() string {
	return i.KeyMaterial + " " + i.KeyType + " " + i.Comment
}

// SanitizeAlias tworzy bezpieczną dla systemu plików i konfiguracji nazwę.
// Ta sama wartość wejściowa zawsze daje ten sam alias.
func SanitizeAlias(comment string) string {
	lowered := strings.ToLower(comment)

	// Zamieniamy znaki niedozwolone w nazwach plików na podkreślenia
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', ':', '\\', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, lowered)
}
