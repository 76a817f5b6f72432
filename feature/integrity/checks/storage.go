package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"stock-counter/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders lists the folders that must exist in the bucket.
var RequiredFolders = []string{storage.SnapshotsFolder}

// StorageReport is the result of a storage check.
type StorageReport struct {
	Bucket         string   `json:"bucket"`
	BucketExists   bool     `json:"bucket_exists"`
	MissingFolders []string `json:"missing"`
}

// OK reports whether nothing needs fixing.
func (r *StorageReport) OK() bool {
	return r.BucketExists && len(r.MissingFolders) == 0
}

// CheckStorage reports whether the bucket and its folders exist.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is nil")
	}

	report := &StorageReport{Bucket: bucket, MissingFolders: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.MissingFolders = append(report.MissingFolders, RequiredFolders...)
		return report, nil
	}

	for _, folder := range RequiredFolders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderPath(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
			break
		}

		if !found {
			report.MissingFolders = append(report.MissingFolders, folder)
		}
	}

	return report, nil
}

// FixStorage creates the bucket and the folders the report lists as missing.
func FixStorage(ctx context.Context, client storage.Client, logger *zap.Logger, report *StorageReport) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, report.Bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
			return fmt.Errorf("failed to create bucket %s: %w", report.Bucket, err)
		}
		logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
	}

	for _, folder := range report.MissingFolders {
		_, err := client.PutObject(ctx, report.Bucket, folderPath(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderPath(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
