// Package render turns navigation results into HTML fragments that embed in
// a larger page. Every location name is escaped by html/template.
//
// A missing location or an unreachable destination is rendered as a "no
// path" message, never returned as an error. Errors come only from
// template execution or a cancelled context.
package render

import (
	"context"
	"errors"
	"html/template"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnav/errkind"
)

// Navigator is the query surface of campus.Backend used for rendering.
type Navigator interface {
	FindLocationsOnShortestPath(start, end string) []string
	FindTimesOnShortestPath(start, end string) []float64
	LongestLocationListFrom(ctx context.Context, start string) ([]string, error)
}

var templates = template.Must(template.New("fragments").Parse(`
{{- define "pathPrompt" -}}
<div>
  <label for="start">Start Location:</label>
  <input type="text" id="start" name="start" placeholder="Enter Start Location" />
  <br/>
  <label for="end">Destination:</label>
  <input type="text" id="end" name="end" placeholder="Enter Destination" />
  <br/>
  <input type="button" value="Find Shortest Path" onclick="generateShortestPathResponseHTML()" />
</div>
{{- end -}}

{{- define "pathResponse" -}}
<div>
{{- if .Locations}}
<p>Shortest Path From {{.Start}} to {{.End}}:</p>
<ol>
{{- range .Locations}}
<li>{{.}}</li>
{{- end}}
</ol>
<p>Total Travel Time: {{.Total}} seconds</p>
{{- else}}
<p>No Path Found From {{.Start}} to {{.End}}.</p>
{{- end}}
</div>
{{- end -}}

{{- define "longestPrompt" -}}
<div>
  <label for="from">Start Location:</label>
  <input type="text" id="from" name="from" placeholder="Enter Start Location" />
  <br/>
  <input type="button" value="Longest Location List From" onclick="generateLongestLocationListFromResponseHTML()" />
</div>
{{- end -}}

{{- define "longestResponse" -}}
<div>
{{- if .Locations}}
<p>Longest Location List From {{.Start}}:</p>
<ol>
{{- range .Locations}}
<li>{{.}}</li>
{{- end}}
</ol>
<p>Total Locations: {{len .Locations}}</p>
{{- else}}
<p>{{.Problem}}</p>
{{- end}}
</div>
{{- end -}}

{{- define "locations" -}}
<ul>
{{- range .}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end -}}
`))

// Frontend renders fragments for one Navigator.
type Frontend struct {
	nav Navigator
}

// New returns a Frontend over nav.
func New(nav Navigator) *Frontend { return &Frontend{nav: nav} }

// ShortestPathPromptHTML returns the start/destination form.
func (f *Frontend) ShortestPathPromptHTML() (string, error) {
	return execute("pathPrompt", nil)
}

// ShortestPathResponseHTML describes the fastest walk from start to end:
// a header paragraph, an ordered list of locations and the total travel
// time, or a "No Path Found" paragraph.
func (f *Frontend) ShortestPathResponseHTML(start, end string) (string, error) {
	locations := f.nav.FindLocationsOnShortestPath(start, end)
	var total float64
	if len(locations) > 0 {
		for _, t := range f.nav.FindTimesOnShortestPath(start, end) {
			total += t
		}
	}

	return execute("pathResponse", struct {
		Start, End string
		Locations  []string
		Total      string
	}{start, end, locations, strconv.FormatFloat(total, 'f', -1, 64)})
}

// LongestLocationListPromptHTML returns the single-input form for the
// longest-list query.
func (f *Frontend) LongestLocationListPromptHTML() (string, error) {
	return execute("longestPrompt", nil)
}

// LongestLocationListResponseHTML lists the longest shortest-path location
// list from start with its size, or explains why there is none.
func (f *Frontend) LongestLocationListResponseHTML(ctx context.Context, start string) (string, error) {
	locations, err := f.nav.LongestLocationListFrom(ctx, start)
	problem := ""
	switch {
	case err == nil && len(locations) == 0:
		problem = "No locations found starting from " + start + "."
	case errors.Is(err, errkind.ErrNotFound):
		locations = nil
		problem = "No reachable locations found for the start location " + start + "."
	case err != nil:
		return "", err
	}

	return execute("longestResponse", struct {
		Start     string
		Locations []string
		Problem   string
	}{start, locations, problem})
}

// LocationsHTML renders every location as an unordered list.
func LocationsHTML(locations []string) (string, error) {
	return execute("locations", locations)
}

func execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}

	return sb.String(), nil
}
