package staticfs

import (
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

var tEnv *testEnv

type testEnv struct {
	fsys billy.Filesystem
	h    *HTTPHandler
	ts   *httptest.Server
}

func newTestEnv() *testEnv {
	tEnv := testEnv{}
	tEnv.fsys = memfs.New()
	types := NewContentTypeTable(DefaultConfig().MimeTypes)
	tEnv.h = NewHTTPHandler(tEnv.fsys, types, DefaultHTTPHandlerOptions())
	tEnv.ts = httptest.NewServer(tEnv.h)
	return &tEnv
}

func (t testEnv) write(name string, data []byte) error {
	if dir := path.Dir(name); dir != "." {
		if err := t.fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(t.fsys, name, data, 0o644)
}

func (t testEnv) destroy() {
	t.ts.Close()
}

func TestMain(m *testing.M) {
	tEnv = newTestEnv()
	code := m.Run()
	tEnv.destroy()
	os.Exit(code)
}
