package web

import (
	"embed"
	"html/template"

	"gympal/workout-app/internal/cache"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates for the gin engine.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"addOne": func(i int) int { return i + 1 },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

// QueryView is what a template sees of one cached query. Every list-bearing
// region renders exactly one of four branches: loading, error, items, or an
// explicit empty message — templates branch on Loading, Failed, then on
// whether Data has items.
type QueryView struct {
	Loading bool
	Failed  bool
	Data    interface{}
}

// queryView maps a cache entry onto its render branch.
func queryView(e cache.Entry) QueryView {
	switch e.Status {
	case cache.StatusLoading:
		return QueryView{Loading: true}
	case cache.StatusError:
		return QueryView{Failed: true}
	default:
		return QueryView{Data: e.Data}
	}
}

// withData keeps the branch of a view but swaps the payload, used when a raw
// query result is mapped into a template-shaped model.
func (v QueryView) withData(data interface{}) QueryView {
	v.Data = data
	return v
}
