package mila

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolvePath expands a leading "~" to the user's home directory and any
// "$VAR"/"${VAR}" environment reference, normalizes and collapses path
// separators for the host OS, then follows the documented lookup order:
// try the path verbatim (relative to the process's working directory, or
// as-is if already absolute), then each SearchPath root joined with the
// name, in order, until one exists. Unlike the source this is grounded
// on, the search path is a field on the Interpreter instance rather than
// a process-wide global, so two Interpreters never fight over it.
func (it *Interpreter) resolvePath(name string) (string, error) {
	expanded := filepath.Clean(filepath.FromSlash(expandPath(name)))

	if _, err := os.Stat(expanded); err == nil {
		return expanded, nil
	}
	if filepath.IsAbs(expanded) {
		return "", fmt.Errorf("cannot find %q", name)
	}

	for _, dir := range it.SearchPath {
		candidate := filepath.Clean(filepath.Join(expandPath(dir), expanded))
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("cannot find %q on search path", name)
}

func expandPath(s string) string {
	if strings.HasPrefix(s, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			s = home + s[1:]
		}
	}
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}
