package render

import (
	"context"

	"github.com/goliatone/go-formguard/pkg/model"
)

// Renderer converts a FormModel plus per-request state into bytes (HTML,
// serialized values, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
