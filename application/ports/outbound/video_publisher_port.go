package outbound

import "context"

type PublishVideoRequest struct {
	JobID         string
	VideoFileName string
}

type PublishVideoResponse struct {
	URL      string
	VideoKey string
}

type VideoPublisherPort interface {
	Publish(ctx context.Context, req PublishVideoRequest) (*PublishVideoResponse, error)
}
