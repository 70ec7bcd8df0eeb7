package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"console-draw/core"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// ObjectClient is the subset of the S3 API the store needs.
type ObjectClient interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type documentStore struct {
	client ObjectClient
	bucket string
}

// NewDocumentStore connects to S3 with the default credential chain.
func NewDocumentStore(ctx context.Context, bucket string) core.DocumentStore {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Unable to load AWS SDK config")
	}
	return NewDocumentStoreWithClient(s3.NewFromConfig(cfg), bucket)
}

func NewDocumentStoreWithClient(client ObjectClient, bucket string) core.DocumentStore {
	return &documentStore{client: client, bucket: bucket}
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	log := logrus.WithFields(logrus.Fields{"document_id": id, "bucket": s.bucket})

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			log.Warn("Drawing with specified ID not found")
			return nil, fmt.Errorf("document with id %s not found", id)
		}
		log.WithError(err).Error("Failed to fetch drawing")
		return nil, fmt.Errorf("failed to get document with id %s: %w", id, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read document data: %w", err)
	}

	log.Debug("Drawing retrieved")
	return &core.Document{Data: *bytes.NewBuffer(data)}, nil
}

func (s *documentStore) Create(ctx context.Context, document *core.Document) (string, error) {
	id := ulid.Make().String()
	log := logrus.WithFields(logrus.Fields{"document_id": id, "bucket": s.bucket})

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(id),
		Body:        bytes.NewReader(document.Data.Bytes()),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		log.WithError(err).Error("Failed to upload drawing")
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	log.Info("Drawing published")
	return id, nil
}
