package outbound

import (
	"context"

	"github.com/palgaurav085-cmd/animexa-worker/domain"
)

// SceneSegmenterPort turns a script into the ordered scene list the rest
// of the pipeline consumes. A whitespace-only script yields zero scenes
// and no error; the caller decides what that means.
type SceneSegmenterPort interface {
	Segment(ctx context.Context, script string) ([]domain.Scene, error)
}
