package outbound

import "context"

type PublishArtifactRequest struct {
	RunID    string
	FilePath string
	FileName string
}

type PublishArtifactResponse struct {
	ArtifactKey string
	StoreRegion string
}

// ArtifactPublisherPort mirrors a finished artifact to remote storage.
type ArtifactPublisherPort interface {
	Publish(ctx context.Context, req PublishArtifactRequest) (*PublishArtifactResponse, error)
}
