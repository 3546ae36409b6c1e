// Package settings stores the user's saved API credential in the XDG data
// directory:
//
//	$XDG_DATA_HOME/mdtranslate/auth.json  (default: ~/.local/share/mdtranslate/auth.json)
//
// The file is written with 0600 permissions. The stored key is a fallback:
// GEMINI_API_KEY in the environment always outranks it.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dataDirName = "mdtranslate"
	fileName    = "auth.json"
)

// Credentials is the auth.json schema.
type Credentials struct {
	APIKey string `json:"apiKey,omitempty"`
}

// dataDir returns the XDG data directory for mdtranslate.
func dataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, dataDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", dataDirName), nil
}

func filePath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// FilePath returns the auth.json path for display purposes.
func FilePath() string {
	p, err := filePath()
	if err != nil {
		return ""
	}
	return p
}

// Load reads the stored credentials. Missing or unreadable files yield an
// empty value, never an error: a broken store behaves like no store.
func Load() Credentials {
	path, err := filePath()
	if err != nil {
		return Credentials{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}
	}
	return creds
}

// Save writes the credentials with owner-only permissions.
func Save(creds Credentials) error {
	path, err := filePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing auth file: %w", err)
	}
	return nil
}

// SetAPIKey stores a new API key. Blank keys are rejected here rather than
// discovered later at request time.
func SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("refusing to store a blank API key")
	}
	creds := Load()
	creds.APIKey = key
	return Save(creds)
}

// APIKey returns the stored API key, or empty if none is saved.
func APIKey() string {
	return Load().APIKey
}

// Remove deletes the stored credentials.
func Remove() error {
	path, err := filePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing auth file: %w", err)
	}
	return nil
}

// MaskKey returns a masked version of a key for display.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
