package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/config"
	"github.com/palgaurav085-cmd/animexa-worker/domain"
)

func TestBuildClipPromptRotatesStyles(t *testing.T) {
	first := buildClipPrompt(domain.NewScene("A cat sits.", 0))
	second := buildClipPrompt(domain.NewScene("A dog runs.", 1))
	wrapped := buildClipPrompt(domain.NewScene("A bird flies.", len(clipStyles)))

	if !strings.HasPrefix(first, "A cat sits.") {
		t.Errorf("prompt = %q, want scene text first", first)
	}
	if !strings.Contains(first, "3-6 sec animated motion. No text.") {
		t.Errorf("prompt = %q, missing motion instruction", first)
	}
	if !strings.Contains(first, clipStyles[0]) {
		t.Errorf("prompt = %q, want style %q", first, clipStyles[0])
	}
	if !strings.Contains(second, clipStyles[1]) {
		t.Errorf("prompt = %q, want style %q", second, clipStyles[1])
	}
	if !strings.Contains(wrapped, clipStyles[0]) {
		t.Errorf("prompt = %q, want rotation back to %q", wrapped, clipStyles[0])
	}
}

func TestClipGeneratorDownloadsClip(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("video")
		_, _ = w.Write([]byte("fake mp4 bytes"))
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewPollinationsClipGenerator(NewContentStreamer(logger), &config.ClipConfig{
		ApiUrl:  server.URL,
		Timeout: time.Minute,
	}, logger)

	outputDir := t.TempDir()
	clipPath, err := generator.Generate(context.Background(), outbound.GenerateClipRequest{
		Scene:     domain.NewScene("A cat sits.", 0),
		OutputDir: outputDir,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if clipPath != filepath.Join(outputDir, "clip_0.mp4") {
		t.Errorf("clip path = %q", clipPath)
	}
	payload, err := os.ReadFile(clipPath)
	if err != nil {
		t.Fatalf("read clip: %v", err)
	}
	if string(payload) != "fake mp4 bytes" {
		t.Errorf("clip payload = %q", payload)
	}

	if !strings.HasPrefix(gotPath, "/prompt/") {
		t.Errorf("request path = %q, want /prompt/ prefix", gotPath)
	}
	if !strings.Contains(gotPath, "A cat sits.") {
		t.Errorf("request path = %q, want decoded prompt", gotPath)
	}
	if gotQuery != "1" {
		t.Errorf("video query = %q, want 1", gotQuery)
	}
}

func TestClipGeneratorServerErrorLeavesNoFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "generation backend down", http.StatusBadGateway)
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewPollinationsClipGenerator(NewContentStreamer(logger), &config.ClipConfig{
		ApiUrl:  server.URL,
		Timeout: time.Minute,
	}, logger)

	outputDir := t.TempDir()
	_, err := generator.Generate(context.Background(), outbound.GenerateClipRequest{
		Scene:     domain.NewScene("A cat sits.", 0),
		OutputDir: outputDir,
	})
	if err == nil {
		t.Fatal("expected an error for a non-OK response")
	}

	entries, readErr := os.ReadDir(outputDir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("scratch dir has %d entries, want none", len(entries))
	}
}
