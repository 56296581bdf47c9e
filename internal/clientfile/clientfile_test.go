package clientfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeClientFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write client file: %v", err)
	}
	return path
}

func TestParseValid(t *testing.T) {
	t.Parallel()

	path := writeClientFile(t, `{"client": {"name": "Acme Corp", "address": "123 Main St\nDenver CO"}, "notes": "ignored"}`)
	client, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if client.Name != "Acme Corp" {
		t.Fatalf("Name = %q, want %q", client.Name, "Acme Corp")
	}
	if !strings.HasPrefix(client.Address, "123 Main St") {
		t.Fatalf("Address = %q, want 123 Main St prefix", client.Address)
	}
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Parse() error = nil, want not found error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("Parse() error = %v, want not found message", err)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		fragment string
	}{
		{name: "malformed json", content: `{"client":`, fragment: "invalid JSON"},
		{name: "missing client key", content: `{"customer": {"name": "A", "address": "B"}}`, fragment: `missing "client"`},
		{name: "null client", content: `{"client": null}`, fragment: `missing "client"`},
		{name: "empty name", content: `{"client": {"name": "", "address": "B"}}`, fragment: "name is required"},
		{name: "missing address", content: `{"client": {"name": "A"}}`, fragment: "address is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(writeClientFile(t, tt.content))
			if err == nil {
				t.Fatal("Parse() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.fragment) {
				t.Fatalf("Parse() error = %v, want %q", err, tt.fragment)
			}
		})
	}
}
