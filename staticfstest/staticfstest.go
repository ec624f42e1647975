package staticfstest

import (
	"net/http/httptest"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/naivary/staticfs"
)

// Env is an in-memory serving environment for tests. The served
// tree lives on a memfs so tests never touch the host filesystem.
type Env struct {
	Fsys  billy.Filesystem
	Types *staticfs.ContentTypeTable
	H     *staticfs.HTTPHandler
	TS    *httptest.Server
}

// NewEnv builds a handler with the default options and content
// types on an empty memfs and exposes it on an httptest server.
func NewEnv() *Env {
	e := Env{}
	e.Fsys = memfs.New()
	e.Types = staticfs.NewContentTypeTable(staticfs.DefaultConfig().MimeTypes)
	e.H = staticfs.NewHTTPHandler(e.Fsys, e.Types, staticfs.DefaultHTTPHandlerOptions())
	e.TS = httptest.NewServer(e.H)
	return &e
}

// WriteFile places a file into the served tree, creating parent
// directories as needed.
func (e *Env) WriteFile(name string, data []byte) error {
	if dir := path.Dir(name); dir != "." {
		if err := e.Fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(e.Fsys, name, data, 0o644)
}

func (e *Env) Destroy() {
	e.TS.Close()
}
