package reference

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvDB names the environment variable holding the default database root.
const EnvDB = "GANFLU_DB"

// Supported targets.
var Targets = []string{"IAV", "IBV"}

var (
	ErrNoReference        = errors.New("no reference TOML found")
	ErrAmbiguousReference = errors.New("more than one reference TOML found")
)

// ValidTarget reports whether target is a supported virus type.
func ValidTarget(target string) bool {
	for _, t := range Targets {
		if t == target {
			return true
		}
	}
	return false
}

// Dir picks the reference directory for target. An explicit dbDir must
// exist. Otherwise $GANFLU_DB/<target> is used, then db/<target> next to
// the executable.
func Dir(dbDir, target string) (string, error) {
	if dbDir != "" {
		abs, err := filepath.Abs(dbDir)
		if err != nil {
			return "", err
		}
		if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
			return "", fmt.Errorf("reference directory %s does not exist", abs)
		}
		return abs, nil
	}
	var candidates []string
	if root := os.Getenv(EnvDB); root != "" {
		candidates = append(candidates, filepath.Join(root, target))
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "db", target))
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && fi.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("no reference directory for %s (tried %s)", target, strings.Join(candidates, ", "))
}

// FindTOML returns the single *.toml file in dir.
func FindTOML(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	var found []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".toml") {
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w in %s", ErrNoReference, dir)
	case 1:
		return found[0], nil
	default:
		sort.Strings(found)
		return "", fmt.Errorf("%w in %s: %s", ErrAmbiguousReference, dir, strings.Join(found, ", "))
	}
}
