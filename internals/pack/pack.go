package pack

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/minepkg/mcassets/internals/merrors"
)

// Reader gives indexed access to the entries of a zip (or jar) file
type Reader struct {
	zipReader *zip.Reader
}

// Entry is one file or directory inside the archive
type Entry struct {
	Index int
	// Name is the raw name as stored in the archive. It is not sanitized
	Name           string
	Size           uint64
	CompressedSize uint64
	file           *zip.File
}

// Open returns a reader for the uncompressed contents of this entry
func (e *Entry) Open() (io.ReadCloser, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, merrors.New(classify(err), "open entry", e.Name, err)
	}
	return rc, nil
}

// Len returns the number of entries in the archive
func (p *Reader) Len() int {
	return len(p.zipReader.File)
}

// Entry returns the entry at index i in the archive's own order
func (p *Reader) Entry(i int) (*Entry, error) {
	if i < 0 || i >= p.Len() {
		return nil, merrors.New(merrors.KindFormat, "read entry", "", pkgerrors.Errorf("index %d out of range [0, %d)", i, p.Len()))
	}
	f := p.zipReader.File[i]
	return &Entry{
		Index:          i,
		Name:           f.Name,
		Size:           f.UncompressedSize64,
		CompressedSize: f.CompressedSize64,
		file:           f,
	}, nil
}

// NewReader returns a Reader from a `io.ReaderAt`
func NewReader(reader io.ReaderAt, size int64) (*Reader, error) {
	zipReader, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, merrors.New(classify(err), "read archive", "", err)
	}
	return &Reader{zipReader}, nil
}

// PackageFile is a local zip (or jar) file
type PackageFile struct {
	*os.File
	*Reader
}

// Open will open the archive specified by filePath and return a PackageFile.
// The caller has to Close it
func Open(filePath string) (*PackageFile, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, merrors.New(merrors.KindIO, "open", filePath, err)
	}

	fStats, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, merrors.New(merrors.KindIO, "stat", filePath, pkgerrors.Wrap(err, "archive"))
	}

	reader, err := NewReader(file, fStats.Size())
	if err != nil {
		file.Close()
		var mErr *merrors.Error
		if errors.As(err, &mErr) {
			mErr.Path = filePath
		}
		return nil, err
	}

	return &PackageFile{file, reader}, nil
}

// classify sorts errors from archive/zip into filesystem failures and
// everything else (bad headers, unknown compression, checksum mismatch)
func classify(err error) merrors.Kind {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return merrors.KindIO
	}
	return merrors.KindFormat
}

// ReadError tags errors returned by the reading side of a copy
func ReadError(name string, err error) error {
	return merrors.New(classify(err), "read entry", name, err)
}
