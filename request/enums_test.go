package request

import "testing"

func TestEnumMappingsCoverAllEightHeaders(t *testing.T) {
	want := []string{
		"x-ms-consistency-level",
		"x-ms-documentdb-content-serialization-format",
		"x-ms-enumeration-direction",
		"x-ms-fanout-operation-state",
		"x-ms-indexing-directive",
		"x-ms-migratecollection-directive",
		"x-ms-remote-storage-type",
		"x-ms-read-feed-key-type",
	}
	if len(EnumMappings) != len(want) {
		t.Fatalf("EnumMappings has %d entries, want %d", len(EnumMappings), len(want))
	}
	seen := make(map[string]bool)
	for _, m := range EnumMappings {
		seen[m.HeaderName] = true
	}
	for _, name := range want {
		if !seen[name] {
			t.Fatalf("EnumMappings missing header %q", name)
		}
	}
}

func TestConsistencyLevelWireIDsMatchProtocol(t *testing.T) {
	cases := []struct {
		text string
		want byte
	}{
		{"strong", 0},
		{"Bounded", 1},
		{"SESSION", 2},
		{"Eventual", 3},
		{"consistentprefix", 4},
	}
	var mapping EnumMapping
	for _, m := range EnumMappings {
		if m.HeaderName == "x-ms-consistency-level" {
			mapping = m
		}
	}
	for _, c := range cases {
		got, ok := mapping.Encode(c.text)
		if !ok || got != c.want {
			t.Fatalf("Encode(%q) = %d, %v, want %d, true", c.text, got, ok, c.want)
		}
	}
}

func TestConsistencyLevelUnknownTextFails(t *testing.T) {
	var mapping EnumMapping
	for _, m := range EnumMappings {
		if m.HeaderName == "x-ms-consistency-level" {
			mapping = m
		}
	}
	if _, ok := mapping.Encode("Relaxed"); ok {
		t.Fatalf("Encode(Relaxed) should fail: not a recognized consistency level")
	}
}

func TestIndexingDirectiveWireIDs(t *testing.T) {
	cases := map[string]byte{"default": 0, "exclude": 1, "include": 2}
	var mapping EnumMapping
	for _, m := range EnumMappings {
		if m.HeaderName == "x-ms-indexing-directive" {
			mapping = m
		}
	}
	for text, want := range cases {
		got, ok := mapping.Encode(text)
		if !ok || got != want {
			t.Fatalf("Encode(%q) = %d, %v, want %d, true", text, got, ok, want)
		}
	}
}

func TestEnumerationDirectionWireIDsStartAtOne(t *testing.T) {
	var mapping EnumMapping
	for _, m := range EnumMappings {
		if m.HeaderName == "x-ms-enumeration-direction" {
			mapping = m
		}
	}
	if got, ok := mapping.Encode("forward"); !ok || got != 1 {
		t.Fatalf("forward wire id = %d, %v, want 1, true", got, ok)
	}
	if got, ok := mapping.Encode("reverse"); !ok || got != 2 {
		t.Fatalf("reverse wire id = %d, %v, want 2, true", got, ok)
	}
}
