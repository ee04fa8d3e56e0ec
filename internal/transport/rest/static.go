package rest

import (
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// NewStaticHandler serves stored assets from root. Directory listings and
// dot-files (including in-flight uploads) are never served. Keys are never
// reused, so responses are cacheable forever. Assets are sandboxed so a
// scriptable format can never run on the API origin.
const assetCSP = "default-src 'none'; style-src 'unsafe-inline'; sandbox"

func NewStaticHandler(root string) http.Handler {
	files := http.FileServer(assetFS{http.Dir(root)})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", assetCSP)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		files.ServeHTTP(w, r)
	})
}

type assetFS struct {
	fs http.FileSystem
}

func (a assetFS) Open(name string) (http.File, error) {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return nil, fs.ErrNotExist
		}
	}

	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}

	return f, nil
}
