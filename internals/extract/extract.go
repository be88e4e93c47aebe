// Package extract copies the bundled assets out of an installed Minecraft client jar
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mcassets/internals/globals"
	"github.com/minepkg/mcassets/internals/mcroot"
	"github.com/minepkg/mcassets/internals/merrors"
	"github.com/minepkg/mcassets/internals/pack"
)

// DefaultPrefix is the part of the jar that contains the vanilla assets
const DefaultPrefix = "assets/minecraft"

// Logger receives the informational lines of an extraction. *cmdlog.Logger is one
type Logger interface {
	Info(s string)
}

// Progress is passed to Extractor.OnEntry after every written file
type Progress struct {
	// Index is the position of the entry in the archive
	Index int
	Total int
	// Extracted is the number of files written so far (including this one)
	Extracted int
	Path      string
	Bytes     uint64
}

// Result sums up a finished extraction
type Result struct {
	Archive   string
	Total     int
	Extracted int
	Bytes     uint64
	Files     []string
}

// Extractor extracts every archive entry below Prefix into Dest
type Extractor struct {
	// Root is the Minecraft root. Resolved from the environment if empty
	Root string
	// Dest is the output directory. The working directory is used if empty
	Dest string
	// Prefix filters entries by their raw name. DefaultPrefix if empty
	Prefix string
	// Logger may be nil
	Logger Logger
	// Verbose also logs every extracted file
	Verbose bool
	// OnEntry is called after each written file if set
	OnEntry func(p Progress)
}

// ExtractAssets extracts the assets of version into the working directory
func ExtractAssets(version string) error {
	e := &Extractor{Logger: globals.Logger}
	_, err := e.Extract(version)
	return err
}

func (e *Extractor) info(format string, a ...interface{}) {
	if e.Logger != nil {
		e.Logger.Info(fmt.Sprintf(format, a...))
	}
}

func (e *Extractor) prefix() string {
	if e.Prefix == "" {
		return DefaultPrefix
	}
	return e.Prefix
}

func (e *Extractor) dest() string {
	if e.Dest == "" {
		return "."
	}
	return e.Dest
}

// ArchivePath returns the client jar path of version. It does not check if it exists
func (e *Extractor) ArchivePath(version string) (string, error) {
	root := e.Root
	if root == "" {
		var err error
		root, err = mcroot.ResolveRoot()
		if err != nil {
			return "", err
		}
	}
	return mcroot.VersionArchive(root, version), nil
}

func (e *Extractor) open(version string) (*pack.PackageFile, string, error) {
	archivePath, err := e.ArchivePath(version)
	if err != nil {
		return nil, "", err
	}

	e.info("Opening %s …", archivePath)
	archive, err := pack.Open(archivePath)
	if err != nil {
		return nil, "", err
	}
	e.info("File %s contains %d files", archivePath, archive.Len())

	return archive, archivePath, nil
}

// List returns the entries that Extract would write, without writing anything
func (e *Extractor) List(version string) ([]*pack.Entry, error) {
	archive, _, err := e.open(version)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	matches := []*pack.Entry{}
	for i := 0; i < archive.Len(); i++ {
		entry, err := archive.Entry(i)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(entry.Name, e.prefix()) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// Extract writes every entry whose raw name starts with the prefix to the destination.
// The first error aborts; files written up to that point stay on disk
func (e *Extractor) Extract(version string) (*Result, error) {
	archive, archivePath, err := e.open(version)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	prefix := e.prefix()
	dest := e.dest()
	result := &Result{Archive: archivePath, Total: archive.Len()}

	for i := 0; i < result.Total; i++ {
		entry, err := archive.Entry(i)
		if err != nil {
			return nil, err
		}

		// the filter intentionally looks at the raw name
		if !strings.HasPrefix(entry.Name, prefix) {
			continue
		}

		sanitized := Sanitize(entry.Name)
		target, err := outputPath(dest, sanitized)
		if err != nil {
			return nil, err
		}

		// only the sanitized name decides between file and directory
		if strings.HasSuffix(sanitized, "/") {
			if err := os.MkdirAll(target, os.ModePerm); err != nil {
				return nil, merrors.New(merrors.KindIO, "mkdir", target, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
			return nil, merrors.New(merrors.KindIO, "mkdir", filepath.Dir(target), err)
		}

		written, err := writeEntry(entry, target)
		if err != nil {
			return nil, err
		}

		result.Extracted++
		result.Bytes += written
		result.Files = append(result.Files, target)

		if e.Verbose {
			e.info("  %s", target)
		}
		if e.OnEntry != nil {
			e.OnEntry(Progress{
				Index:     i,
				Total:     result.Total,
				Extracted: result.Extracted,
				Path:      target,
				Bytes:     written,
			})
		}
	}

	e.info("Extracted %d files.", result.Extracted)
	return result, nil
}

// readTracker remembers errors coming from the archive side of io.Copy
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}

func writeEntry(entry *pack.Entry, target string) (uint64, error) {
	rc, err := entry.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return 0, merrors.New(merrors.KindIO, "create", target, err)
	}

	src := &readTracker{r: rc}
	n, err := io.Copy(out, src)
	if err != nil {
		out.Close()
		if src.err != nil {
			return 0, pack.ReadError(entry.Name, src.err)
		}
		return 0, merrors.New(merrors.KindIO, "write", target, err)
	}

	if err := out.Close(); err != nil {
		return 0, merrors.New(merrors.KindIO, "close", target, err)
	}
	return uint64(n), nil
}
