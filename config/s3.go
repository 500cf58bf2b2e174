package config

import (
	"os"
)

type S3Config struct {
	BucketName string
	Region     string
}

// GetS3Config returns nil when no bucket is configured; artifact
// mirroring is optional.
func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("ARTIFACT_BUCKET_NAME")
	if bucketName == "" {
		return nil, nil
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	return &S3Config{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
