package services

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/domain"
)

type sentenceSegmenter struct {
	logger          outbound.LoggerPort
	wordsPerSecond  float64
	maxSceneSeconds float64
}

// NewSentenceSegmenter builds the local scene segmenter. It partitions a
// script into sentences and packs them into scenes whose estimated
// speaking time stays under maxSceneSeconds.
func NewSentenceSegmenter(logger outbound.LoggerPort, wordsPerSecond float64, maxSceneSeconds float64) outbound.SceneSegmenterPort {
	return &sentenceSegmenter{
		logger:          logger,
		wordsPerSecond:  wordsPerSecond,
		maxSceneSeconds: maxSceneSeconds,
	}
}

func (s *sentenceSegmenter) Segment(_ context.Context, script string) ([]domain.Scene, error) {
	sentences := splitSentences(script)
	if len(sentences) == 0 {
		return nil, nil
	}

	scenes := make([]domain.Scene, 0, len(sentences))
	block := make([]string, 0, 4)
	blockWords := 0

	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))
		if len(block) > 0 && s.estimatedSeconds(blockWords+words) > s.maxSceneSeconds {
			scenes = append(scenes, domain.NewScene(strings.Join(block, " "), len(scenes)))
			block = block[:0]
			blockWords = 0
		}
		block = append(block, sentence)
		blockWords += words
	}
	scenes = append(scenes, domain.NewScene(strings.Join(block, " "), len(scenes)))

	s.logger.DebugWithFields("segmented script", map[string]interface{}{
		"sentences": len(sentences),
		"scenes":    len(scenes),
	})

	return scenes, nil
}

func (s *sentenceSegmenter) estimatedSeconds(words int) float64 {
	return math.Ceil(float64(words) / s.wordsPerSecond)
}

// splitSentences breaks the script on sentence-terminal punctuation
// followed by whitespace. Newlines always end a sentence, so scripts
// without punctuation still segment line by line.
func splitSentences(script string) []string {
	sentences := make([]string, 0)
	for _, line := range strings.Split(script, "\n") {
		runes := []rune(strings.TrimSpace(line))
		var builder strings.Builder
		for i, r := range runes {
			builder.WriteRune(r)
			if isSentenceTerminal(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
				if sentence := strings.TrimSpace(builder.String()); sentence != "" {
					sentences = append(sentences, sentence)
				}
				builder.Reset()
			}
		}
		if tail := strings.TrimSpace(builder.String()); tail != "" {
			sentences = append(sentences, tail)
		}
	}
	return sentences
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
