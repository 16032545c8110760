package dto

type CreateJobRequest struct {
	Script string `json:"script" binding:"required"`
}

type CreateJobResponse struct {
	JobID string `json:"jobId"`
}
