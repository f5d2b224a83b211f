package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelve/cmd/shelve/render"
	"shelve/internal/organize"
)

func TestNewResultView(t *testing.T) {
	t.Run("sorts counts by category name", func(t *testing.T) {
		result := &organize.Result{
			Message:    "Successfully organized 4 files!",
			TotalMoved: 4,
			Stats:      map[string]int{"PDFs": 1, "Images": 2, "Others": 1},
		}

		view := render.NewResultView(result)

		assert.Equal(t, []render.CategoryCount{
			{Name: "Images", Count: 2},
			{Name: "Others", Count: 1},
			{Name: "PDFs", Count: 1},
		}, view.Counts)
	})

	t.Run("formats file errors", func(t *testing.T) {
		result := &organize.Result{
			Errors: []organize.FileError{{Name: "x.txt", Reason: "permission denied"}},
		}

		view := render.NewResultView(result)

		require.Len(t, view.Errors, 1)
		assert.Contains(t, view.Errors[0], "x.txt")
		assert.Contains(t, view.Errors[0], "permission denied")
		assert.True(t, view.HasErrors())
	})
}

func TestLipglossRenderer_RenderResult(t *testing.T) {
	newRenderer := func() *render.LipglossRenderer {
		return render.NewLipglossRenderer(&bytes.Buffer{}, 80)
	}

	t.Run("renders message, counts and root", func(t *testing.T) {
		view := render.ResultView{
			Message:       "Successfully organized 3 files!",
			OrganizedRoot: "/tmp/src/Organized_Files",
			TotalMoved:    3,
			Counts: []render.CategoryCount{
				{Name: "Images", Count: 2},
				{Name: "PDFs", Count: 1},
			},
		}

		out := newRenderer().RenderResult(view)

		assert.Contains(t, out, "Successfully organized 3 files!")
		assert.Contains(t, out, "/tmp/src/Organized_Files")
		assert.Contains(t, out, "Images")
		assert.Contains(t, out, "PDFs")
		assert.NotContains(t, out, "Errors")
	})

	t.Run("renders trailing error list", func(t *testing.T) {
		view := render.ResultView{
			Message:       "Successfully organized 1 files!",
			OrganizedRoot: "/tmp/src/Organized_Files",
			Errors:        []string{`failed to move "x.txt": permission denied`},
		}

		out := newRenderer().RenderResult(view)

		assert.Contains(t, out, "Errors (1):")
		assert.Contains(t, out, "x.txt")
	})

	t.Run("clips overlong paths to the width", func(t *testing.T) {
		view := render.ResultView{
			Message:       "ok",
			OrganizedRoot: "/very/long" + string(bytes.Repeat([]byte{'x'}, 100)),
		}

		out := render.NewLipglossRenderer(&bytes.Buffer{}, 20).RenderResult(view)

		assert.Contains(t, out, "…")
	})
}
