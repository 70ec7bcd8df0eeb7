package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"console-draw/core"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// documentStore writes each published drawing to its own file named by ID.
type documentStore struct {
	basePath string
}

func NewDocumentStore(basePath string) core.DocumentStore {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logrus.WithError(err).WithField("base_path", basePath).Fatal("Failed to create storage directory")
	}
	return &documentStore{basePath: basePath}
}

// path maps id to its file. Only well-formed ULIDs are accepted so an ID can
// never name a file outside basePath.
func (s *documentStore) path(id string) (string, error) {
	if _, err := ulid.ParseStrict(id); err != nil {
		return "", fmt.Errorf("document with id %s not found", id)
	}
	return filepath.Join(s.basePath, id), nil
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	log := logrus.WithField("document_id", id)

	filePath, err := s.path(id)
	if err != nil {
		log.Warn("Rejected malformed drawing ID")
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Drawing with specified ID not found")
			return nil, fmt.Errorf("document with id %s not found", id)
		}
		log.WithError(err).Error("Failed to read drawing")
		return nil, err
	}

	doc := &core.Document{}
	doc.Data.Write(data)
	log.WithField("file_path", filePath).Debug("Drawing retrieved")
	return doc, nil
}

func (s *documentStore) Create(ctx context.Context, document *core.Document) (string, error) {
	id := ulid.Make().String()
	filePath := filepath.Join(s.basePath, id)
	log := logrus.WithFields(logrus.Fields{
		"document_id": id,
		"file_path":   filePath,
	})

	if err := os.WriteFile(filePath, document.Data.Bytes(), 0o644); err != nil {
		log.WithError(err).Error("Failed to write drawing")
		return "", err
	}

	log.Info("Drawing published")
	return id, nil
}
