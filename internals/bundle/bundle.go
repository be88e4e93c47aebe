// Package bundle packs extracted assets into a single archive file
package bundle

import (
	"os"
	"path/filepath"
	"strings"

	archiver "github.com/mholt/archiver/v3"
	"github.com/pkg/errors"
)

// Supported returns true if archiver can write files with the extension of target
func Supported(target string) bool {
	format, err := archiver.ByExtension(target)
	if err != nil {
		return false
	}
	_, ok := format.(archiver.Archiver)
	return ok
}

// TopLevelDirs returns the distinct first path segments of files relative to base.
// These are the sources passed to archiver so the archive keeps the same layout
func TopLevelDirs(base string, files []string) ([]string, error) {
	seen := map[string]bool{}
	sources := []string{}
	for _, f := range files {
		rel, err := filepath.Rel(base, f)
		if err != nil {
			return nil, err
		}
		top := strings.SplitN(filepath.ToSlash(rel), "/", 2)[0]
		if top == ".." || seen[top] {
			continue
		}
		seen[top] = true
		sources = append(sources, filepath.Join(base, top))
	}
	return sources, nil
}

// Create writes sources into the archive target. The format is picked by the
// file extension (.zip, .tar, .tar.gz, …). An existing target gets replaced
func Create(target string, sources []string) error {
	if !Supported(target) {
		return errors.Errorf("%s: unsupported bundle format", target)
	}
	if len(sources) == 0 {
		return errors.New("nothing to bundle")
	}

	// archiver refuses to overwrite existing files
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing old bundle")
	}

	if err := archiver.Archive(sources, target); err != nil {
		return errors.Wrapf(err, "creating bundle %s", target)
	}
	return nil
}
