package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"stock-counter/core/storage"
	"stock-counter/feature/product"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a snapshot object does not exist.
	ErrNotFound = errors.New("snapshot not found")
	// ErrInvalidName is returned for names outside the snapshot folder layout.
	ErrInvalidName = errors.New("invalid snapshot name")
)

const (
	namePrefix = "estoque-"
	nameSuffix = ".json"
	timeLayout = "20060102T150405Z"
)

// Document is the content of a snapshot object.
type Document struct {
	GeneratedAt time.Time             `json:"gerado_em"`
	Products    []product.ProductView `json:"produtos"`
}

// Info describes a stored snapshot.
type Info struct {
	Name         string    `json:"nome"`
	Key          string    `json:"chave"`
	Size         int64     `json:"tamanho"`
	LastModified time.Time `json:"modificado_em"`
}

// Service exports the product listing to object storage.
type Service struct {
	products  *product.Service
	client    storage.Client
	bucket    string
	retention int
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new snapshot service.
func NewService(products *product.Service, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		products:  products,
		client:    client,
		bucket:    cfg.Bucket,
		retention: cfg.Retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Export writes the current listing as a new snapshot object.
func (s *Service) Export(ctx context.Context) (*Info, error) {
	list, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now().UTC()
	data, err := json.Marshal(Document{
		GeneratedAt: generatedAt,
		Products:    product.NewProductViews(list),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s%s-%s%s", namePrefix, generatedAt.Format(timeLayout), uuid.NewString()[:8], nameSuffix)
	key := objectKey(name)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("key", key),
		zap.Int("products", len(list)),
		zap.Int("bytes", len(data)))

	if s.retention > 0 {
		if err := s.prune(ctx); err != nil {
			// The export itself succeeded.
			s.logger.Warn("Failed to prune old snapshots", zap.Error(err))
		}
	}

	return &Info{Name: name, Key: key, Size: int64(len(data)), LastModified: generatedAt}, nil
}

// List returns the stored snapshots, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    objectKey(""),
		Recursive: true,
	}

	infos := []Info{}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		name := path.Base(obj.Key)
		if !validName(name) {
			continue
		}
		infos = append(infos, Info{
			Name:         name,
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	// Names embed the UTC export time, so lexical order is chronological.
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name > infos[j].Name })
	return infos, nil
}

// Get reads a snapshot back by name.
func (s *Service) Get(ctx context.Context, name string) (*Document, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectKey(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapNotFound(name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrapNotFound(name, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return &doc, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created snapshot bucket", zap.String("bucket", s.bucket))
	return nil
}

func (s *Service) prune(ctx context.Context) error {
	infos, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(infos) <= s.retention {
		return nil
	}
	for _, info := range infos[s.retention:] {
		if err := s.client.RemoveObject(ctx, s.bucket, info.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove %s: %w", info.Key, err)
		}
		s.logger.Info("Removed old snapshot", zap.String("key", info.Key))
	}
	return nil
}

func objectKey(name string) string {
	return storage.SnapshotsFolder + "/" + name
}

func validName(name string) bool {
	return strings.HasPrefix(name, namePrefix) &&
		strings.HasSuffix(name, nameSuffix) &&
		!strings.ContainsAny(name, "/\\")
}

func wrapNotFound(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("failed to read snapshot %s: %w", name, err)
}
