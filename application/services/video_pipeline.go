package services

import (
	"context"
	"math"
	"os"
	"time"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/inbound"
	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/domain"
)

type videoPipeline struct {
	logger        outbound.LoggerPort
	registry      outbound.JobRegistryPort
	segmenter     outbound.SceneSegmenterPort
	clipGenerator outbound.ClipGeneratorPort
	concatenator  outbound.ConcatenateClipsPort
	publisher     outbound.VideoPublisherPort
	callTimeout   time.Duration
}

// NewVideoPipeline builds the per-job driver. callTimeout bounds every
// network-bound collaborator call so a stalled service fails the job
// instead of hanging its task.
func NewVideoPipeline(
	logger outbound.LoggerPort,
	registry outbound.JobRegistryPort,
	segmenter outbound.SceneSegmenterPort,
	clipGenerator outbound.ClipGeneratorPort,
	concatenator outbound.ConcatenateClipsPort,
	publisher outbound.VideoPublisherPort,
	callTimeout time.Duration) inbound.VideoPipelinePort {
	return &videoPipeline{
		logger:        logger,
		registry:      registry,
		segmenter:     segmenter,
		clipGenerator: clipGenerator,
		concatenator:  concatenator,
		publisher:     publisher,
		callTimeout:   callTimeout,
	}
}

// Run drives one job to a terminal state. Any stage error becomes the
// job's failure record; nothing escapes the task boundary.
func (p *videoPipeline) Run(ctx context.Context, jobID string, script string) {
	if err := p.process(ctx, jobID, script); err != nil {
		p.logger.ErrorWithFields(err, "job failed", map[string]interface{}{
			"job_id": jobID,
		})
		if markErr := p.registry.MarkFailed(jobID, err); markErr != nil {
			p.logger.ErrorWithFields(markErr, "failed to record job failure", map[string]interface{}{
				"job_id": jobID,
			})
		}
		return
	}
	p.logger.InfoWithFields("job succeeded", map[string]interface{}{
		"job_id": jobID,
	})
}

func (p *videoPipeline) process(ctx context.Context, jobID string, script string) error {
	if err := p.registry.MarkRunning(jobID); err != nil {
		return err
	}

	scenes, err := p.segment(ctx, script)
	if err != nil {
		return domain.NewPipelineError(domain.StageSegmentation, err)
	}
	if len(scenes) == 0 {
		return domain.NewPipelineError(domain.StageSegmentation, domain.ErrEmptyScript)
	}
	if err := p.registry.SetTotalScenes(jobID, len(scenes)); err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "animexa-")
	if err != nil {
		return domain.NewPipelineError(domain.StageAcquisition, err)
	}
	defer func() {
		if removeErr := os.RemoveAll(workDir); removeErr != nil {
			p.logger.ErrorWithFields(removeErr, "failed to remove job scratch directory", map[string]interface{}{
				"job_id":   jobID,
				"work_dir": workDir,
			})
		}
	}()

	clipPaths := make([]string, 0, len(scenes))
	for i, scene := range scenes {
		clipPath, err := p.acquireClip(ctx, scene, workDir)
		if err != nil {
			return domain.NewPipelineError(domain.StageAcquisition, err)
		}
		clipPaths = append(clipPaths, clipPath)

		progress := int(math.Round(float64(i+1) / float64(len(scenes)) * 50))
		if err := p.registry.SetProgress(jobID, progress); err != nil {
			return err
		}
	}

	finalPath, err := p.concatenator.Concatenate(jobID, clipPaths, workDir)
	if err != nil {
		return domain.NewPipelineError(domain.StageAssembly, err)
	}
	if err := p.registry.SetProgress(jobID, 60); err != nil {
		return err
	}

	res, err := p.publish(ctx, jobID, finalPath)
	if err != nil {
		return domain.NewPipelineError(domain.StagePublication, err)
	}
	if err := p.registry.SetProgress(jobID, 90); err != nil {
		return err
	}

	return p.registry.MarkSucceeded(jobID, res.URL)
}

func (p *videoPipeline) segment(ctx context.Context, script string) ([]domain.Scene, error) {
	newCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.segmenter.Segment(newCtx, script)
}

func (p *videoPipeline) acquireClip(ctx context.Context, scene domain.Scene, workDir string) (string, error) {
	newCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.clipGenerator.Generate(newCtx, outbound.GenerateClipRequest{
		Scene:     scene,
		OutputDir: workDir,
	})
}

func (p *videoPipeline) publish(ctx context.Context, jobID string, videoFileName string) (*outbound.PublishVideoResponse, error) {
	newCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()
	return p.publisher.Publish(newCtx, outbound.PublishVideoRequest{
		JobID:         jobID,
		VideoFileName: videoFileName,
	})
}
