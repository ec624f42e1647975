package staticfs

import (
	"strings"
	"testing"
)

func TestContentTypeTableResolve(t *testing.T) {
	types := NewContentTypeTable(DefaultConfig().MimeTypes)
	tests := []struct {
		name string
		file string
		want string
	}{
		{
			name: "webmanifest override",
			file: "site.webmanifest",
			want: "application/manifest+json",
		},
		{
			name: "svg override",
			file: "icon.svg",
			want: "image/svg+xml",
		},
		{
			name: "override is case insensitive",
			file: "ICON.SVG",
			want: "image/svg+xml",
		},
		{
			name: "surrounding path doesn't matter",
			file: "/deeply/nested/dir/site.WebManifest",
			want: "application/manifest+json",
		},
		{
			name: "unknown extension falls back to binary",
			file: "payload.unknownext",
			want: ContentTypeBinary,
		},
		{
			name: "no extension falls back to binary",
			file: "Makefile",
			want: ContentTypeBinary,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.Resolve(tt.file); got != tt.want {
				t.Errorf("ContentTypeTable.Resolve() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestContentTypeTableAdditive(t *testing.T) {
	types := NewContentTypeTable(DefaultConfig().MimeTypes)
	// the overrides must not remove anything from the default
	// table
	if got := types.Resolve("index.html"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("default table entry is gone. Got: %s", got)
	}
	if got := types.Resolve("data.json"); !strings.HasPrefix(got, "application/json") {
		t.Fatalf("default table entry is gone. Got: %s", got)
	}
}

func TestContentTypeTableDetect(t *testing.T) {
	types := NewContentTypeTable(nil)
	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	if got := types.Detect("logo.asset", png); got != "image/png" {
		t.Fatalf("sniffing didn't recognize the png signature. Got: %s", got)
	}
	if got := types.Detect("garbage.asset", []byte("not a known signature")); got != ContentTypeBinary {
		t.Fatalf("unknown payload must resolve to %s. Got: %s", ContentTypeBinary, got)
	}
	// the extension always wins over the payload
	if got := types.Detect("logo.html", png); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("extension must win over sniffing. Got: %s", got)
	}
}

func TestNewContentTypeTableNormalization(t *testing.T) {
	types := NewContentTypeTable(map[string]string{
		".WEBP":       "image/webp",
		"missing-dot": "application/x-broken",
	})
	if got := types.Resolve("photo.webp"); got != "image/webp" {
		t.Fatalf("upper-case override key is not normalized. Got: %s", got)
	}
	if got := types.Resolve("file.missing-dot"); got != ContentTypeBinary {
		t.Fatalf("entry without a leading dot must be skipped. Got: %s", got)
	}
}
