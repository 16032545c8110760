package outbound

import (
	"context"

	"github.com/palgaurav085-cmd/animexa-worker/domain"
)

type GenerateClipRequest struct {
	Scene     domain.Scene
	OutputDir string
}

// ClipGeneratorPort obtains one short video clip for a scene and writes
// it into the job's scratch directory, returning the local path.
type ClipGeneratorPort interface {
	Generate(ctx context.Context, req GenerateClipRequest) (string, error)
}
