package outbound

type ConcatenateClipsPort interface {
	Concatenate(jobID string, clipPaths []string, outputDir string) (string, error)
}
