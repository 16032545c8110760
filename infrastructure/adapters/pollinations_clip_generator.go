package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/config"
	"github.com/palgaurav085-cmd/animexa-worker/domain"
)

// clipStyles rotates by scene ordinal so an animation varies visually
// without per-scene configuration.
var clipStyles = []string{
	"colorful animation style",
	"soft pastel cartoon style",
	"vibrant anime style",
}

type pollinationsClipGenerator struct {
	ContentStreamer
	logger     outbound.LoggerPort
	clipConfig *config.ClipConfig
}

func NewPollinationsClipGenerator(contentStreamer ContentStreamer, clipConfig *config.ClipConfig, logger outbound.LoggerPort) outbound.ClipGeneratorPort {
	return &pollinationsClipGenerator{
		ContentStreamer: contentStreamer,
		logger:          logger,
		clipConfig:      clipConfig,
	}
}

func (g *pollinationsClipGenerator) Generate(ctx context.Context, req outbound.GenerateClipRequest) (string, error) {
	httpReq, err := g.getRequest(ctx, req.Scene)
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return "", err
	}

	dest := filepath.Join(req.OutputDir, fmt.Sprintf("clip_%d.mp4", req.Scene.Ordinal))
	if err := g.FetchToFile(httpReq, dest); err != nil {
		g.logger.ErrorWithFields(err, "Failed to fetch the clip", map[string]interface{}{
			"ordinal": req.Scene.Ordinal,
		})
		return "", err
	}

	return dest, nil
}

func (g *pollinationsClipGenerator) getRequest(ctx context.Context, scene domain.Scene) (*http.Request, error) {
	endpoint, err := url.Parse(g.clipConfig.ApiUrl)
	if err != nil {
		g.logger.Error(err, "Failed to parse the clip API URL")
		return nil, err
	}

	endpoint.Path = "/prompt/" + buildClipPrompt(scene)

	query := url.Values{}
	query.Set("video", "1")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	return req, nil
}

func buildClipPrompt(scene domain.Scene) string {
	style := clipStyles[scene.Ordinal%len(clipStyles)]
	return fmt.Sprintf("%s. 3-6 sec animated motion. No text. %s.", scene.Text, style)
}
