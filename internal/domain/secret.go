package domain

import (
	"fmt"
	"path"
	"strings"
)

const secretNamespace = "gimme-omni"

// SecretPath maps a secret reference such as "tsops://token" to the
// slash-separated entry name "gimme-omni/tsops/token" shared by every
// secret backend.
func SecretPath(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", fmt.Errorf("secret reference is empty")
	}

	scheme, rest, found := strings.Cut(trimmed, "://")
	if !found {
		scheme, rest = "", trimmed
	}

	cleaned := path.Clean("/" + path.Join(scheme, rest))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(rest, "..") {
		return "", fmt.Errorf("invalid secret reference %q", ref)
	}

	return path.Join(secretNamespace, cleaned), nil
}
