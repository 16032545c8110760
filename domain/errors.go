package domain

import (
	"errors"
	"fmt"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobTerminal = errors.New("job already in a terminal state")
	ErrEmptyScript = errors.New("script contains no usable sentences")
)

type PipelineStage string

const (
	StageSegmentation PipelineStage = "segmentation"
	StageAcquisition  PipelineStage = "acquisition"
	StageAssembly     PipelineStage = "assembly"
	StagePublication  PipelineStage = "publication"
)

// PipelineError marks which pipeline stage failed a job. Its message is
// what ends up in the job record's error field.
type PipelineError struct {
	Stage PipelineStage
	Err   error
}

func NewPipelineError(stage PipelineStage, err error) *PipelineError {
	return &PipelineError{
		Stage: stage,
		Err:   err,
	}
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
