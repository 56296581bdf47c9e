// Package clientfile loads customer records from client JSON files.
package clientfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Client is the customer record described by a client file.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type document struct {
	Client *Client `json:"client"`
}

// Parse loads and validates a client JSON file. The document must carry a
// top-level "client" object with non-empty name and address; any other
// keys are ignored.
func Parse(path string) (Client, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Client{}, fmt.Errorf("client file not found: %s", path)
		}
		return Client{}, fmt.Errorf("read client file %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Client{}, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if doc.Client == nil {
		return Client{}, fmt.Errorf("client data missing %q field in %s", "client", path)
	}
	if doc.Client.Name == "" {
		return Client{}, fmt.Errorf("client name is required in %s", path)
	}
	if doc.Client.Address == "" {
		return Client{}, fmt.Errorf("client address is required in %s", path)
	}
	return *doc.Client, nil
}
