package staticfs

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// ContentTypeBinary is the generic fallback for payloads
// no mime-type is known for.
const ContentTypeBinary = "application/octet-stream"

// ContentTypeTable maps a filename extension (with the leading
// dot, e.g. `.svg`) to the mime-type to serve it with. The table
// is built once and immutable afterwards, making concurrent
// lookups safe without any locking. Entries take precedence over
// the process wide default table of the `mime` package but never
// remove anything from it.
type ContentTypeTable struct {
	overrides map[string]string
}

// NewContentTypeTable builds a table from the given overrides.
// Extensions are normalized to lower-case; entries without a
// leading dot are skipped.
func NewContentTypeTable(overrides map[string]string) *ContentTypeTable {
	t := ContentTypeTable{
		overrides: make(map[string]string, len(overrides)),
	}
	for ext, typ := range overrides {
		if !strings.HasPrefix(ext, ".") || typ == "" {
			continue
		}
		t.overrides[strings.ToLower(ext)] = typ
	}
	return &t
}

// Resolve returns the mime-type to use for the given filename.
// The lookup never fails: unknown extensions resolve to
// ContentTypeBinary.
func (t *ContentTypeTable) Resolve(name string) string {
	if typ := t.resolve(name); typ != "" {
		return typ
	}
	return ContentTypeBinary
}

// Detect behaves like Resolve but additionally sniffs the magic
// numbers of the leading payload bytes before giving up and
// returning ContentTypeBinary. Pass the first 262 bytes of the
// file for the sniffing to recognize every supported type.
func (t *ContentTypeTable) Detect(name string, head []byte) string {
	if typ := t.resolve(name); typ != "" && typ != ContentTypeBinary {
		return typ
	}
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return ContentTypeBinary
}

func (t *ContentTypeTable) resolve(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if typ, ok := t.overrides[ext]; ok {
		return typ
	}
	return mime.TypeByExtension(ext)
}

// AddExtensionType allows you to add a custom file extension
// e.g. `.test` and the associated mime-type to the process wide
// default table, for example `text/plain`. Every ContentTypeTable
// falls back to that table.
func AddExtensionType(ext string, typ string) error {
	return mime.AddExtensionType(ext, typ)
}
