package render

import (
	"sort"

	"shelve/internal/organize"
)

// Renderer turns a run outcome into human-readable text. Machine
// formats (json, yaml) are serialized straight from organize.Result and
// bypass the Renderer.
type Renderer interface {
	RenderResult(view ResultView) string
}

type ResultView struct {
	Message       string
	OrganizedRoot string
	TotalMoved    int
	Counts        []CategoryCount
	Errors        []string
}

// CategoryCount is one category's moved-file tally.
type CategoryCount struct {
	Name  string
	Count int
}

// NewResultView flattens a Result for display. Counts are sorted by
// category name so output does not depend on map iteration or
// directory-listing order.
func NewResultView(result *organize.Result) ResultView {
	view := ResultView{
		Message:       result.Message,
		OrganizedRoot: result.OrganizedRoot,
		TotalMoved:    result.TotalMoved,
	}

	for name, count := range result.Stats {
		view.Counts = append(view.Counts, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(view.Counts, func(i, j int) bool {
		return view.Counts[i].Name < view.Counts[j].Name
	})

	for _, fe := range result.Errors {
		view.Errors = append(view.Errors, fe.String())
	}

	return view
}

func (v ResultView) HasErrors() bool {
	return len(v.Errors) > 0
}
