// Package token implements Token, the typed cell bound to one header
// registry entry that a HeaderStream owns and encodes.
//
// Grounded on hivekit's hive.VK: a zero-cost typed view with an explicit
// present/absent flag, constructed from a registry entry's default and only
// mutated through a single validating setter.
package token

import "github.com/cosmosdb-go/rntbd/internal/wire"

// Token is a single field bound to a registry entry, holding presence and a
// value. Its value shape always matches entry.Type (§3's invariant);
// Set enforces this.
type Token struct {
	entry   wire.RegistryEntry
	present bool
	value   wire.Value
}

// New constructs a Token for entry with its registry default and
// present=false.
func New(entry wire.RegistryEntry) Token {
	return Token{entry: entry, value: entry.Default}
}

// Set assigns v to the token and marks it present. It fails with
// *wire.DomainViolation if v's kind does not match the entry's declared
// wire type — a programmer error, never a user-input error (§4.2).
func (t *Token) Set(v wire.Value) error {
	if v.Kind() != t.entry.Type {
		return &wire.DomainViolation{ID: t.entry.ID, Expected: t.entry.Type, Got: v.Kind()}
	}
	t.value = v
	t.present = true
	return nil
}

// Present reports whether Set has been called on this token.
func (t Token) Present() bool { return t.present }

// Value returns the token's current value (the registry default if not
// present).
func (t Token) Value() wire.Value { return t.value }

// Entry returns the registry entry this token is bound to.
func (t Token) Entry() wire.RegistryEntry { return t.entry }
