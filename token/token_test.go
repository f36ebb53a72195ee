package token

import (
	"errors"
	"testing"

	"github.com/cosmosdb-go/rntbd/internal/wire"
)

func TestNewTokenStartsAbsentWithDefault(t *testing.T) {
	entry, ok := wire.Default.LookupByName("PageSize")
	if !ok {
		t.Fatalf("PageSize entry missing from registry")
	}
	tok := New(entry)
	if tok.Present() {
		t.Fatalf("fresh token should not be present")
	}
	if tok.Value().AsULong() != 0 {
		t.Fatalf("fresh token should carry the registry default")
	}
}

func TestSetFlipsPresentAndStoresValue(t *testing.T) {
	entry, _ := wire.Default.LookupByName("PageSize")
	tok := New(entry)
	if err := tok.Set(wire.ULongValue(100)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !tok.Present() {
		t.Fatalf("token should be present after Set")
	}
	if tok.Value().AsULong() != 100 {
		t.Fatalf("Value() = %d, want 100", tok.Value().AsULong())
	}
}

func TestSetRejectsWrongKind(t *testing.T) {
	entry, _ := wire.Default.LookupByName("PageSize") // ULong
	tok := New(entry)
	err := tok.Set(wire.StringValue("oops"))
	if err == nil {
		t.Fatalf("expected DomainViolation")
	}
	var dv *wire.DomainViolation
	if !errors.As(err, &dv) {
		t.Fatalf("expected *wire.DomainViolation, got %T", err)
	}
	if dv.Expected != wire.ULong || dv.Got != wire.String {
		t.Fatalf("unexpected DomainViolation fields: %+v", dv)
	}
}
