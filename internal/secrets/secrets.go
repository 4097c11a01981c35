// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the API keys gapwriter needs. Each key comes from
// its environment variable when set, otherwise from a plain-text file in the
// secrets directory whose name is the key file name and whose trimmed
// contents are the value.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Environment variable names. These are part of the external contract.
const (
	BraveEnv    = "BRAVE_API_KEY"
	TogetherEnv = "TOGETHER_API_KEY"
)

// Key file names inside the secrets directory.
const (
	BraveFile    = "brave-api-key"
	TogetherFile = "together-api-key"
)

// Keys holds the resolved API keys. An empty field means the key is not
// configured.
type Keys struct {
	Brave    string
	Together string
}

// Sources lists, for logging, which keys were resolved. Values are never
// included.
func (k Keys) Sources() []string {
	var names []string
	if k.Brave != "" {
		names = append(names, BraveEnv)
	}
	if k.Together != "" {
		names = append(names, TogetherEnv)
	}
	return names
}

// Resolve loads dir and overlays the environment, looked up with lookupEnv
// (os.LookupEnv in production). A set but blank variable does not override
// a file.
func Resolve(dir string, lookupEnv func(string) (string, bool)) (Keys, error) {
	files, err := Load(dir)
	if err != nil {
		return Keys{}, err
	}

	pick := func(env, file string) string {
		if v, ok := lookupEnv(env); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
		return files[file]
	}

	return Keys{
		Brave:    pick(BraveEnv, BraveFile),
		Together: pick(TogetherEnv, TogetherFile),
	}, nil
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("could not read secret", "file", name, "error", err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
