package fs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lexso"
)

// SoftHyphen is the invisible hyphenation hint used throughout the dictionary.
const SoftHyphen = "\u00ad"

// Ensure Dumper implements lexso.EntityStore at compile time.
var _ lexso.EntityStore = (*Dumper)(nil)

// Dumper appends entities as JSON lines to one file per entity kind.
// File names carry a version tag so runs with different extractors do not mix.
type Dumper struct {
	dir     string
	version string
}

// NewDumper creates a new Dumper writing to dir.
func NewDumper(dir, version string) *Dumper {
	return &Dumper{dir: dir, version: version}
}

// Path returns the file used for an entity kind, e.g. "articles".
func (d *Dumper) Path(kind string) string {
	return filepath.Join(d.dir, fmt.Sprintf("%s_%s.jsonl", kind, d.version))
}

func (d *Dumper) AppendArticles(ctx context.Context, articles []*lexso.Article) error {
	records := make([]any, len(articles))
	for i, a := range articles {
		records[i] = a
	}
	return d.append("articles", records)
}

func (d *Dumper) AppendSuperlemmas(ctx context.Context, superlemmas []*lexso.Superlemma) error {
	records := make([]any, len(superlemmas))
	for i, s := range superlemmas {
		records[i] = s
	}
	return d.append("superlemmas", records)
}

func (d *Dumper) AppendIdioms(ctx context.Context, idioms []lexso.Idiom) error {
	records := make([]any, len(idioms))
	for i, idiom := range idioms {
		records[i] = idiom
	}
	return d.append("idioms", records)
}

// MarkDone appends the document ID to the progress log.
func (d *Dumper) MarkDone(ctx context.Context, documentID string) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(d.Path("documents"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, documentID); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Done returns the IDs recorded by MarkDone. A missing log means nothing is done.
func (d *Dumper) Done(ctx context.Context) ([]string, error) {
	f, err := os.Open(d.Path("documents"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, scanner.Err()
}

// append writes one line per record. The file is closed before returning so
// that a crash later in the run cannot lose records already appended.
func (d *Dumper) append(kind string, records []any) error {
	if len(records) == 0 {
		return nil
	}
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, r := range records {
		line, err := EncodeRecord(r)
		if err != nil {
			return lexso.Errorf(lexso.EINTERNAL, "encode %s record: %v", kind, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	f, err := os.OpenFile(d.Path(kind), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EncodeRecord serializes v to a single JSON line with soft hyphens removed
// from every string value, at any nesting depth. Keys are left untouched.
func EncodeRecord(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(StripSoftHyphens(generic)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// StripSoftHyphens walks a decoded JSON value and removes soft hyphens from
// its strings.
func StripSoftHyphens(v any) any {
	switch t := v.(type) {
	case string:
		return strings.ReplaceAll(t, SoftHyphen, "")
	case map[string]any:
		for k, child := range t {
			t[k] = StripSoftHyphens(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = StripSoftHyphens(child)
		}
		return t
	default:
		return v
	}
}
