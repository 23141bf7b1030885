// Package web serves the campus navigation page and its HTML fragments.
package web

import (
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/katalvlaran/campusnav/render"
)

// Backend is what the handlers query.
type Backend interface {
	render.Navigator
	ListOfAllLocations() []string
}

// Handler renders pages for one Backend.
type Handler struct {
	backend  Backend
	frontend *render.Frontend
	logger   *slog.Logger
}

// NewHandler returns a Handler over b. A nil logger discards output.
func NewHandler(b Backend, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Handler{backend: b, frontend: render.New(b), logger: logger}
}

// NewRouter registers every route of h behind WithDefaults.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /path", h.Path)
	mux.HandleFunc("GET /longest", h.Longest)
	mux.HandleFunc("GET /locations", h.Locations)
	mux.HandleFunc("GET /healthz", h.Health)

	return WithDefaults(mux, h.logger)
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Campus Navigator</title>
<script>
async function load(url, target) {
  const res = await fetch(url);
  document.getElementById(target).innerHTML = await res.text();
}
function generateShortestPathResponseHTML() {
  const q = new URLSearchParams({
    start: document.getElementById("start").value,
    end: document.getElementById("end").value,
  });
  load("/path?" + q, "pathResponse");
}
function generateLongestLocationListFromResponseHTML() {
  const q = new URLSearchParams({from: document.getElementById("from").value});
  load("/longest?" + q, "longestResponse");
}
</script>
</head>
<body>
<h1>Campus Navigator</h1>
<h2>Shortest Path</h2>
{{.PathPrompt}}
<div id="pathResponse"></div>
<h2>Longest Location List</h2>
{{.LongestPrompt}}
<div id="longestResponse"></div>
<h2>Locations</h2>
{{.Locations}}
</body>
</html>
`))

// Index serves the full page with both prompts and the location list.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	pathPrompt, err := h.frontend.ShortestPathPromptHTML()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	longestPrompt, err := h.frontend.LongestLocationListPromptHTML()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	locations, err := render.LocationsHTML(h.backend.ListOfAllLocations())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = page.Execute(w, struct {
		PathPrompt, LongestPrompt, Locations template.HTML
	}{template.HTML(pathPrompt), template.HTML(longestPrompt), template.HTML(locations)})
	if err != nil {
		h.logger.Error("render page", "error", err)
	}
}

// Path answers /path?start=..&end=.. with the shortest path fragment.
func (h *Handler) Path(w http.ResponseWriter, r *http.Request) {
	start, end := r.URL.Query().Get("start"), r.URL.Query().Get("end")
	if start == "" || end == "" {
		http.Error(w, "start and end are required", http.StatusBadRequest)
		return
	}
	html, err := h.frontend.ShortestPathResponseHTML(start, end)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeHTML(w, html)
}

// Longest answers /longest?from=.. with the longest location list fragment.
func (h *Handler) Longest(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		http.Error(w, "from is required", http.StatusBadRequest)
		return
	}
	html, err := h.frontend.LongestLocationListResponseHTML(r.Context(), from)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeHTML(w, html)
}

// Locations lists every location.
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	html, err := render.LocationsHTML(h.backend.ListOfAllLocations())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeHTML(w, html)
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "OK\n")
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}
