package staticfs

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-git/go-billy/v5"
	"golang.org/x/exp/slog"
)

// sniffLen is the number of leading bytes the magic-number
// sniffing needs to recognize every supported type.
const sniffLen = 262

// HTTPHandler serves the tree of the given filesystem over HTTP.
// Request paths are cleaned before they are resolved, so a request
// can never address anything outside of the filesystem root.
type HTTPHandler struct {
	router chi.Router
	fsys   billy.Filesystem
	types  *ContentTypeTable
	logger *slog.Logger
	opts   HTTPHandlerOptions
}

func NewHTTPHandler(fsys billy.Filesystem, types *ContentTypeTable, opts HTTPHandlerOptions) *HTTPHandler {
	h := HTTPHandler{}
	r := chi.NewRouter()
	r.Use(requestID)
	r.Get("/*", h.serve)
	r.Head("/*", h.serve)
	h.router = r
	h.fsys = fsys
	h.types = types
	h.opts = opts
	h.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	return &h
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *HTTPHandler) serve(w http.ResponseWriter, r *http.Request) {
	name := cleanPath(r.URL.Path)
	info, err := h.fsys.Stat(name)
	if err != nil {
		httpError(w, toHTTPStatus(err))
		return
	}
	if info.IsDir() {
		h.serveDir(w, r, name)
		return
	}
	h.serveFile(w, r, name, info)
}

func (h *HTTPHandler) serveDir(w http.ResponseWriter, r *http.Request, name string) {
	// directories are always addressed with a trailing slash
	if !strings.HasSuffix(r.URL.Path, "/") {
		http.Redirect(w, r, name+"/", http.StatusMovedPermanently)
		return
	}
	index := h.fsys.Join(name, h.opts.IndexFile)
	if info, err := h.fsys.Stat(index); err == nil && info.Mode().IsRegular() {
		h.serveFile(w, r, index, info)
		return
	}
	if !h.opts.Listings {
		httpError(w, http.StatusForbidden)
		return
	}
	h.serveListing(w, r, name)
}

func (h *HTTPHandler) serveFile(w http.ResponseWriter, r *http.Request, name string, info os.FileInfo) {
	if !info.Mode().IsRegular() {
		httpError(w, http.StatusForbidden)
		return
	}
	f, err := h.fsys.Open(name)
	if err != nil {
		httpError(w, toHTTPStatus(err))
		return
	}
	defer f.Close()

	contentType := h.types.Resolve(name)
	if contentType == ContentTypeBinary && h.opts.SniffContentType {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(f, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			httpError(w, http.StatusInternalServerError)
			return
		}
		contentType = h.types.Detect(name, head[:n])
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			httpError(w, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Error("streaming the file to the client", "path", name, "err", err)
	}
}

func (h *HTTPHandler) serveListing(w http.ResponseWriter, r *http.Request, name string) {
	entries, err := h.fsys.ReadDir(name)
	if err != nil {
		httpError(w, toHTTPStatus(err))
		return
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var buf bytes.Buffer
	title := fmt.Sprintf("Directory listing for %s", html.EscapeString(name))
	fmt.Fprintf(&buf, "<!DOCTYPE HTML>\n<html>\n<head><title>%s</title></head>\n<body>\n<h1>%s</h1>\n<hr>\n<ul>\n", title, title)
	for _, e := range entries {
		link := url.PathEscape(e.Name())
		display := e.Name()
		if e.IsDir() {
			link += "/"
			display += "/"
		}
		fmt.Fprintf(&buf, "<li><a href=%q>%s</a></li>\n", link, html.EscapeString(display))
	}
	buf.WriteString("</ul>\n<hr>\n</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("writing the directory listing", "path", name, "err", err)
	}
}

// cleanPath turns the raw request path into a rooted, cleaned
// path. Any `..` segments are resolved against the root, so the
// result can never point above it.
func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Serve starts serving the handler on the given address. Use a
// Server if you need a clean shutdown path.
func (h *HTTPHandler) Serve(addr string) error {
	return http.ListenAndServe(addr, h.router)
}
