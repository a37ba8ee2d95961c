package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/marqueai/internal/config"
)

func TestNewSelectsDriver(t *testing.T) {
	u, err := New(&config.Config{StorageDriver: "none"})
	require.NoError(t, err)
	_, err = u.Upload(context.Background(), "a.webp", []byte("x"), "image/webp")
	assert.ErrorIs(t, err, ErrDisabled)

	u, err = New(&config.Config{StorageDriver: "S3", S3Bucket: "logos", S3Region: "sa-east-1"})
	require.NoError(t, err)
	s3u, ok := u.(*S3Uploader)
	require.True(t, ok)
	assert.Equal(t, "https://logos.s3.sa-east-1.amazonaws.com", s3u.publicBaseURL)

	_, err = New(&config.Config{StorageDriver: "s3"})
	assert.Error(t, err)

	_, err = New(&config.Config{StorageDriver: "cloudinary"})
	assert.Error(t, err)

	_, err = New(&config.Config{StorageDriver: "ftp"})
	assert.Error(t, err)
}

func TestS3PublicBaseOverride(t *testing.T) {
	u, err := NewS3Uploader(&config.Config{
		S3Bucket:        "logos",
		S3Region:        "us-east-1",
		S3Endpoint:      "http://localhost:9000",
		S3PublicBaseURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", u.publicBaseURL)
}
