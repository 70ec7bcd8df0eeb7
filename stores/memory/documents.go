package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"console-draw/core"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// documentStore keeps published drawings and relay session activity in
// process memory. Both are lost on restart.
type documentStore struct {
	mu        sync.RWMutex
	documents map[string][]byte
	sessions  map[string]int64
}

func NewDocumentStore() core.DocumentStore {
	return &documentStore{
		documents: make(map[string][]byte),
		sessions:  make(map[string]int64),
	}
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	log := logrus.WithField("document_id", id)

	s.mu.RLock()
	data, ok := s.documents[id]
	s.mu.RUnlock()

	if !ok {
		log.Warn("Drawing with specified ID not found")
		return nil, fmt.Errorf("document with id %s not found", id)
	}

	doc := &core.Document{}
	doc.Data.Write(data)
	log.Debug("Drawing retrieved")
	return doc, nil
}

func (s *documentStore) Create(ctx context.Context, document *core.Document) (string, error) {
	id := ulid.Make().String()
	data := append([]byte(nil), document.Data.Bytes()...)

	s.mu.Lock()
	s.documents[id] = data
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"document_id": id,
		"data_length": len(data),
	}).Info("Drawing published")
	return id, nil
}

func (s *documentStore) TouchSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	s.mu.Lock()
	s.sessions[sessionID] = time.Now().UnixMilli()
	s.mu.Unlock()
	return nil
}

// ListSessions returns sessions ordered by most recent activity.
func (s *documentStore) ListSessions(ctx context.Context) ([]core.SessionInfo, error) {
	s.mu.RLock()
	out := make([]core.SessionInfo, 0, len(s.sessions))
	for id, last := range s.sessions {
		out = append(out, core.SessionInfo{ID: id, LastActive: last})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastActive == out[j].LastActive {
			return out[i].ID < out[j].ID
		}
		return out[i].LastActive > out[j].LastActive
	})
	return out, nil
}

func (s *documentStore) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
