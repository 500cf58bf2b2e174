package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
)

type s3ArtifactPublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3ArtifactPublisher(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.ArtifactPublisherPort {
	return &s3ArtifactPublisher{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (p *s3ArtifactPublisher) Publish(ctx context.Context, req outbound.PublishArtifactRequest) (*outbound.PublishArtifactResponse, error) {
	key := fmt.Sprintf("clips/%s/%s", req.RunID, req.FileName)

	file, err := os.Open(req.FilePath)
	if err != nil {
		p.logger.Error(err, "failed to open artifact for publishing")
		return nil, err
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			p.logger.Error(err, "failed to close artifact file")
		}
	}(file)

	_, err = p.s3Svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String("video/mp4"),
	})
	if err != nil {
		p.logger.ErrorWithFields(err, "failed to upload artifact to S3", map[string]interface{}{
			"bucket": p.s3Config.BucketName,
			"key":    key,
		})
		return nil, err
	}

	return &outbound.PublishArtifactResponse{
		ArtifactKey: key,
		StoreRegion: p.s3Config.Region,
	}, nil
}
