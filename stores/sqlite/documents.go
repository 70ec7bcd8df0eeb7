package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"console-draw/core"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (id TEXT PRIMARY KEY, data BLOB);
CREATE TABLE IF NOT EXISTS sessions (id TEXT PRIMARY KEY, last_active INTEGER NOT NULL);
`

type documentStore struct {
	db *sql.DB
}

func NewDocumentStore(dataSourceName string) core.DocumentStore {
	log := logrus.WithField("data_source", dataSourceName)

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		log.WithError(err).Fatal("Failed to open sqlite database")
	}
	if _, err := db.Exec(schema); err != nil {
		log.WithError(err).Fatal("Failed to create sqlite schema")
	}

	return &documentStore{db}
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	log := logrus.WithField("document_id", id)

	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM documents WHERE id = ?", id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Drawing with specified ID not found")
			return nil, fmt.Errorf("document with id %s not found", id)
		}
		log.WithError(err).Error("Failed to read drawing")
		return nil, err
	}

	log.Debug("Drawing retrieved")
	return &core.Document{Data: *bytes.NewBuffer(data)}, nil
}

func (s *documentStore) Create(ctx context.Context, document *core.Document) (string, error) {
	id := ulid.Make().String()
	data := document.Data.Bytes()
	log := logrus.WithFields(logrus.Fields{
		"document_id": id,
		"data_length": len(data),
	})

	if _, err := s.db.ExecContext(ctx, "INSERT INTO documents (id, data) VALUES (?, ?)", id, data); err != nil {
		log.WithError(err).Error("Failed to store drawing")
		return "", err
	}
	log.Info("Drawing published")
	return id, nil
}

func (s *documentStore) TouchSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, last_active) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET last_active = excluded.last_active",
		sessionID, time.Now().UnixMilli())
	if err != nil {
		logrus.WithField("session_id", sessionID).WithError(err).Error("Failed to record session activity")
	}
	return err
}

// ListSessions returns sessions ordered by most recent activity.
func (s *documentStore) ListSessions(ctx context.Context) ([]core.SessionInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, last_active FROM sessions ORDER BY last_active DESC, id ASC")
	if err != nil {
		logrus.WithError(err).Error("Failed to list sessions")
		return nil, err
	}
	defer rows.Close()

	sessions := []core.SessionInfo{}
	for rows.Next() {
		var info core.SessionInfo
		if err := rows.Scan(&info.ID, &info.LastActive); err != nil {
			return nil, err
		}
		sessions = append(sessions, info)
	}
	return sessions, rows.Err()
}

func (s *documentStore) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID); err != nil {
		logrus.WithField("session_id", sessionID).WithError(err).Error("Failed to delete session")
		return err
	}
	return nil
}
