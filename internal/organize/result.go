package organize

import (
	"fmt"

	"github.com/google/uuid"
)

// FileError records one file that could not be moved. The run keeps
// going; these surface as a trailing list next to the success summary.
type FileError struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

func (e FileError) String() string {
	return fmt.Sprintf("failed to move %q: %s", e.Name, e.Reason)
}

// Result is the outcome of one organize run. It is a plain value built
// fresh per run, so concurrent runs against different directories never
// share state. The zero counts and empty Stats of an empty run are
// still a success.
type Result struct {
	RunID         string         `json:"run_id" yaml:"run_id"`
	Source        string         `json:"source" yaml:"source"`
	OrganizedRoot string         `json:"organized_root" yaml:"organized_root"`
	TotalMoved    int            `json:"total_moved" yaml:"total_moved"`
	Stats         map[string]int `json:"stats" yaml:"stats"`
	Errors        []FileError    `json:"errors,omitempty" yaml:"errors,omitempty"`
	Message       string         `json:"message" yaml:"message"`
}

func newResult(source, root string) *Result {
	return &Result{
		RunID:         uuid.New().String(),
		Source:        source,
		OrganizedRoot: root,
		Stats:         make(map[string]int),
	}
}

func (r *Result) recordMove(categoryName string) {
	r.Stats[categoryName]++
	r.TotalMoved++
}

func (r *Result) recordError(name string, err error) {
	r.Errors = append(r.Errors, FileError{Name: name, Reason: err.Error()})
}
