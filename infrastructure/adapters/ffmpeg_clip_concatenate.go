package adapters

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/google/uuid"
)

type ffmpegClipConcatenate struct {
	logger outbound.LoggerPort
}

func NewFFmpegClipConcatenate(logger outbound.LoggerPort) outbound.ConcatenateClipsPort {
	return &ffmpegClipConcatenate{
		logger: logger,
	}
}

// Concatenate joins the clips in the given order without re-encoding.
// The clips are assumed to share a compatible container and codec.
func (f *ffmpegClipConcatenate) Concatenate(jobID string, clipPaths []string, outputDir string) (finalFileName string, err error) {
	fileList, err := os.Create(filepath.Join(outputDir, "concat_"+uuid.NewString()+".txt"))
	if err != nil {
		f.logger.Error(err, "Failed to create clip list file")
		return
	}

	defer func(fileList *os.File) {
		closeErr := fileList.Close()
		if closeErr != nil {
			f.logger.Error(closeErr, "Failed to close clip list file")
			return
		}
	}(fileList)

	writer := bufio.NewWriter(fileList)
	for _, clipPath := range clipPaths {
		_, err = writer.WriteString("file '" + clipPath + "'\n")
		if err != nil {
			f.logger.Error(err, "Failed to write to clip list file")
			return
		}
	}
	err = writer.Flush()
	if err != nil {
		f.logger.Error(err, "Failed to flush clip list file")
		return
	}

	finalFileName = filepath.Join(outputDir, "final_"+jobID+".mp4")

	var stderr bytes.Buffer
	cmd := exec.Command("ffmpeg", "-f", "concat", "-safe", "0", "-i", fileList.Name(), "-c", "copy", finalFileName)
	cmd.Stderr = &stderr
	err = cmd.Run()
	if err != nil {
		f.logger.ErrorWithFields(err, "Failed to concatenate clips", map[string]interface{}{
			"stderr": stderr.String(),
		})
		err = fmt.Errorf("ffmpeg concat: %w", err)
		return
	}

	return
}
