package dto

import "github.com/palgaurav085-cmd/animexa-worker/domain"

type JobResponse struct {
	JobID       string `json:"jobId"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	TotalScenes *int   `json:"totalScenes,omitempty"`
	URL         string `json:"url,omitempty"`
	Error       string `json:"error,omitempty"`
}

func NewJobResponse(job domain.Job) JobResponse {
	return JobResponse{
		JobID:       job.ID,
		Status:      string(job.Status),
		Progress:    job.Progress,
		TotalScenes: job.TotalScenes,
		URL:         job.URL,
		Error:       job.Error,
	}
}
