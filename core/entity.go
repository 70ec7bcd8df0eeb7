package core

import (
	"bytes"
	"context"
)

type (
	// Document is a published drawing: the rendered text of a canvas at the
	// moment it was shared. Documents are immutable once created.
	Document struct {
		Data bytes.Buffer
	}

	DocumentStore interface {
		FindID(ctx context.Context, id string) (*Document, error)
		Create(ctx context.Context, document *Document) (string, error)
	}

	// SessionInfo describes a relay session that has been active recently.
	SessionInfo struct {
		ID         string
		LastActive int64
	}

	SessionRegistry interface {
		ListSessions(ctx context.Context) ([]SessionInfo, error)
		TouchSession(ctx context.Context, sessionID string) error
		DeleteSession(ctx context.Context, sessionID string) error
	}
)
