package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/config"
	"github.com/palgaurav085-cmd/animexa-worker/domain"
	"github.com/donovanhide/eventsource"
)

const DoneSignal = "[DONE]"

const scenePromptInstruction = "Break the script into 3-6 short, visual animation scenes. " +
	"For each scene, generate a strong visual description on its own line. " +
	"No titles, no text overlays, no screen instructions."

type chatGptRequest struct {
	Stream   bool             `json:"stream"`
	Model    string           `json:"model"`
	Messages []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

// sceneOracle is the remote alternative to the local sentence
// segmenter: it streams a chat completion and reads one scene
// description per line of the answer.
type sceneOracle struct {
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
}

func NewSceneOracle(gptConfig *config.GptConfig, logger outbound.LoggerPort) outbound.SceneSegmenterPort {
	return &sceneOracle{
		logger:    logger,
		gptConfig: gptConfig,
	}
}

func (s *sceneOracle) Segment(ctx context.Context, script string) ([]domain.Scene, error) {
	req, err := s.createRequest(ctx, script)
	if err != nil {
		s.logger.Error(err, "Failed to create HTTP request for scene stream")
		return nil, err
	}

	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		s.logger.Error(err, "Failed to subscribe to scene stream")
		return nil, err
	}
	defer stream.Close()

	var builder strings.Builder
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev := <-stream.Events:
			if ev.Data() == DoneSignal {
				return s.parseScenes(builder.String()), nil
			}
			payload, err := s.extractPayload(ev)
			if err != nil {
				return nil, err
			}
			builder.WriteString(payload)
		case err := <-stream.Errors:
			if err == io.EOF {
				s.logger.Info("Scene stream closed")
				return s.parseScenes(builder.String()), nil
			}
			s.logger.Error(err, "Error occurred during scene streaming")
			return nil, err
		}
	}
}

func (s *sceneOracle) parseScenes(content string) []domain.Scene {
	scenes := make([]domain.Scene, 0)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scenes = append(scenes, domain.NewScene(line, len(scenes)))
	}
	return scenes
}

func (s *sceneOracle) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		s.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (s *sceneOracle) createRequest(ctx context.Context, script string) (*http.Request, error) {
	promptReq := chatGptRequest{
		Stream: true,
		Model:  s.gptConfig.Model,
		Messages: []chatGptMessage{
			{
				Role:    "system",
				Content: scenePromptInstruction,
			},
			{
				Role:    "user",
				Content: script,
			},
		},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		s.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
