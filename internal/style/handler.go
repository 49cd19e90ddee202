package style

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"braces.dev/errtrace"
)

// Handler serves theme stylesheets over HTTP.
//
// It answers GET <Prefix>/<theme>.css with the theme's rules for
// the line-oriented and table-oriented code containers, and honors
// If-Modified-Since against the style resource's modification time.
type Handler struct {
	// Prefix is the path prefix the handler is mounted under,
	// without a trailing slash.
	Prefix string

	// Log, if set, receives debug messages.
	Log *log.Logger

	// ModTime reports when the style resources last changed.
	// If unset, the modification time of the running executable
	// is used: themes are compiled into the binary.
	ModTime func() (time.Time, error)

	once    sync.Once
	modTime time.Time
	modErr  error
}

var _ http.Handler = (*Handler)(nil)

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name, ok := h.themeName(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	style, err := Resolve(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	lastMod, err := h.lastModified()
	if err != nil {
		if h.Log != nil {
			h.Log.Printf("cannot determine stylesheet age: %v", err)
		}
		http.Error(w, "stylesheet unavailable", http.StatusInternalServerError)
		return
	}
	lastMod = lastMod.Truncate(time.Second)

	if since := r.Header.Get("If-Modified-Since"); since != "" {
		if t, err := http.ParseTime(since); err == nil && !lastMod.After(t) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	body := Rules(style, "div.code pre") + "\n" + Rules(style, "table.code td")

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Last-Modified", lastMod.UTC().Format(http.TimeFormat))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = strings.NewReader(body).WriteTo(w)
	}
}

// themeName extracts the theme name from a request path,
// accepting only "<Prefix>/<name>.css".
func (h *Handler) themeName(path string) (string, bool) {
	p, ok := strings.CutPrefix(path, h.Prefix)
	if !ok {
		return "", false
	}
	p = strings.TrimPrefix(p, "/")
	name, ok := strings.CutSuffix(p, ".css")
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

func (h *Handler) lastModified() (time.Time, error) {
	h.once.Do(func() {
		mod := h.ModTime
		if mod == nil {
			mod = executableModTime
		}
		h.modTime, h.modErr = mod()
	})
	return h.modTime, errtrace.Wrap(h.modErr)
}

func executableModTime() (time.Time, error) {
	exe, err := os.Executable()
	if err != nil {
		return time.Time{}, errtrace.Wrap(err)
	}
	info, err := os.Stat(exe)
	if err != nil {
		return time.Time{}, errtrace.Wrap(err)
	}
	return info.ModTime(), nil
}
