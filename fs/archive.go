// Package fs provides file-based storage for archived pages and extracted entities.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/lexso"
	"github.com/klauspost/compress/gzip"
)

// ArchiveExt is the file extension of an archived page.
const ArchiveExt = ".html.gz"

// Ensure Archive implements the archive interfaces at compile time.
var (
	_ lexso.DocumentSource = (*Archive)(nil)
	_ lexso.ArchiveWriter  = (*Archive)(nil)
)

// Archive stores one gzip-compressed HTML page per document in a flat
// directory. The document ID is the file name without ArchiveExt.
type Archive struct {
	dir string
}

// NewArchive creates a new Archive rooted at dir.
func NewArchive(dir string) *Archive {
	return &Archive{dir: dir}
}

// Path returns the file path of a document.
func (a *Archive) Path(id string) string {
	return filepath.Join(a.dir, id+ArchiveExt)
}

// List returns document IDs sorted by name so reruns visit documents in the
// same order. Temporary files from interrupted writes are ignored.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, lexso.Errorf(lexso.ESOURCE, "read archive directory: %v", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ArchiveExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ArchiveExt))
	}
	sort.Strings(ids)
	return ids, nil
}

// Load decompresses a document. Archives are written as UTF-8.
func (a *Archive) Load(ctx context.Context, id string) (string, error) {
	f, err := os.Open(a.Path(id))
	if err != nil {
		return "", lexso.Errorf(lexso.ESOURCE, "open %s: %v", id, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return "", lexso.Errorf(lexso.ESOURCE, "decompress %s: %v", id, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return "", lexso.Errorf(lexso.ESOURCE, "decompress %s: %v", id, err)
	}
	return string(data), nil
}

// Exists returns true if the document has been archived.
func (a *Archive) Exists(id string) bool {
	_, err := os.Stat(a.Path(id))
	return err == nil
}

// Save writes the page to a temporary file and renames it into place, so a
// document is either absent or complete.
func (a *Archive) Save(ctx context.Context, id string, html string) error {
	if id == "" {
		return lexso.Errorf(lexso.EINVALID, "document id required")
	}
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(a.dir, id+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	zw := gzip.NewWriter(tmp)
	if _, err := io.WriteString(zw, html); err != nil {
		tmp.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), a.Path(id))
}
