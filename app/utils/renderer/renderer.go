package renderer

import (
	"github.com/unrolled/render"
)

// New returns the JSON renderer shared by every API response.
func New() *render.Render {
	return render.New(render.Options{
		UnEscapeHTML: true,
	})
}
