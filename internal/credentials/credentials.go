// Package credentials reads Google service-account key files.
//
// Only the fields needed to pick a project and to fail early on an obviously
// broken file are checked. Token exchange is left to the Google client libraries.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalid is returned for key files that exist but cannot be used.
var ErrInvalid = errors.New("invalid service account key")

const serviceAccountType = "service_account"

// ServiceAccount is the subset of a key file the seeder relies on.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`

	// Path is where the key was read from.
	Path string `json:"-"`
	// Raw holds the file bytes for handing to the client library.
	Raw []byte `json:"-"`
}

// Load reads and validates the key file at path.
func Load(path string) (*ServiceAccount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service account key %s: %w", path, err)
	}
	sa, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sa.Path = path
	return sa, nil
}

// Parse decodes and validates key file contents.
func Parse(raw []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if sa.Type != serviceAccountType {
		return nil, fmt.Errorf("%w: type is %q, want %q", ErrInvalid, sa.Type, serviceAccountType)
	}

	var missing []string
	if sa.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if sa.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if !strings.Contains(sa.PrivateKey, "PRIVATE KEY") {
		missing = append(missing, "private_key")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}

	sa.Raw = raw
	return &sa, nil
}
