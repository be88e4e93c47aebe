package extract

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/minepkg/mcassets/internals/merrors"
)

var (
	// ErrNoParent is wrapped when a sanitized name has no directory component
	ErrNoParent = errors.New("entry has no parent directory")
	// ErrIllegalPath is wrapped when a sanitized name would leave the destination
	ErrIllegalPath = errors.New("illegal file path")
)

// Sanitize cuts name at the first NUL character. Everything after it is
// attacker controlled garbage that must never reach the filesystem
func Sanitize(name string) string {
	if i := strings.IndexByte(name, 0); i != -1 {
		return name[:i]
	}
	return name
}

// outputPath maps an already sanitized entry name below dest
func outputPath(dest string, sanitized string) (string, error) {
	clean := path.Clean(strings.TrimSuffix(sanitized, "/"))

	// to avoid zip slip (writing outside of the destination) the name has to
	// stay local after cleaning
	if path.IsAbs(clean) || !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", merrors.New(merrors.KindMalformedName, "sanitize", sanitized, ErrIllegalPath)
	}
	if path.Dir(clean) == "." {
		return "", merrors.New(merrors.KindMalformedName, "sanitize", sanitized, ErrNoParent)
	}

	return filepath.Join(dest, filepath.FromSlash(clean)), nil
}
