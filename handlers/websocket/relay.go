// Package websocket serves drawing sessions over socket.io. Each connected
// socket owns one session; lines arrive as EXECUTE_COMMAND and the
// resulting transcript is sent back as RENDER.
package websocket

import (
	"context"
	"errors"
	"html"
	"sort"
	"strings"
	"sync"
	"time"

	"console-draw/core"
	"console-draw/session"

	"github.com/sirupsen/logrus"
)

const (
	EventInit      = "INIT"
	EventRender    = "RENDER"
	EventExecute   = "EXECUTE_COMMAND"
	EventPublish   = "PUBLISH"
	EventPublished = "PUBLISHED"
)

var (
	//nolint:staticcheck // shown to users verbatim
	ErrQuitUnsupported = errors.New("QuitCommand is not supported in web.")
	ErrUnknownSession  = errors.New("no session for this connection")
)

type liveSession struct {
	mu          sync.Mutex
	session     *session.Session
	connectedAt int64
}

// SessionRetention is how long a disconnected session stays listed.
const SessionRetention = 24 * time.Hour

// Relay owns the sessions of all connected sockets.
type Relay struct {
	store      core.DocumentStore
	registry   core.SessionRegistry
	background core.ColorFactory
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

// NewRelay returns an empty relay. registry may be nil.
func NewRelay(store core.DocumentStore, registry core.SessionRegistry, background core.ColorFactory) *Relay {
	return &Relay{
		store:      store,
		registry:   registry,
		background: background,
		now:        time.Now,
		sessions:   make(map[string]*liveSession),
	}
}

// Open creates the session for id if it does not exist yet.
func (r *Relay) Open(ctx context.Context, id string) {
	r.mu.Lock()
	if _, ok := r.sessions[id]; !ok {
		r.sessions[id] = &liveSession{
			session:     session.New(session.WithBackground(r.background)),
			connectedAt: r.now().UnixMilli(),
		}
	}
	total := len(r.sessions)
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{"session_id": id, "total": total}).Info("Session opened")
	r.touch(ctx, id)
}

// Close drops the session for id. Its canvas is discarded.
func (r *Relay) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	total := len(r.sessions)
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{"session_id": id, "total": total}).Info("Session closed")
}

func (r *Relay) lookup(id string) (*liveSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	live, ok := r.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return live, nil
}

// Execute runs line in the session owned by id and returns the transcript
// to display: the echoed line, then the render or the error message.
// Quit is refused since a browser tab cannot be closed from here.
func (r *Relay) Execute(ctx context.Context, id, line string) (string, error) {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "Q") {
		return session.ErrorMessage(ErrQuitUnsupported) + "\n", ErrQuitUnsupported
	}

	live, err := r.lookup(id)
	if err != nil {
		return session.ErrorMessage(err) + "\n", err
	}

	live.mu.Lock()
	reply, err := live.session.Submit(line)
	live.mu.Unlock()
	r.touch(ctx, id)

	var out strings.Builder
	out.WriteString(line)
	out.WriteString("\n")
	if err != nil {
		out.WriteString(session.ErrorMessage(err))
		out.WriteString("\n")
		return out.String(), err
	}
	out.WriteString(reply.Output)
	out.WriteString("\n\n")
	return out.String(), nil
}

// Publish stores the current render of id's canvas and returns its ID.
func (r *Relay) Publish(ctx context.Context, id string) (string, error) {
	live, err := r.lookup(id)
	if err != nil {
		return "", err
	}

	live.mu.Lock()
	text, ok := live.session.Render()
	live.mu.Unlock()
	if !ok {
		return "", core.ErrUninitializedCanvas
	}

	doc := &core.Document{}
	doc.Data.WriteString(text)
	return r.store.Create(ctx, doc)
}

func (r *Relay) touch(ctx context.Context, id string) {
	if r.registry == nil {
		return
	}
	if err := r.registry.TouchSession(ctx, id); err != nil {
		logrus.WithField("session_id", id).WithError(err).Warn("failed to record session activity")
	}
}

func (r *Relay) forget(ctx context.Context, id string) {
	if err := r.registry.DeleteSession(ctx, id); err != nil {
		logrus.WithField("session_id", id).WithError(err).Warn("failed to prune session")
		return
	}
	logrus.WithField("session_id", id).Debug("Pruned idle session")
}

// SessionEntry is one row of the active session listing.
type SessionEntry struct {
	ID          string `json:"id"`
	Connected   bool   `json:"connected"`
	ConnectedAt *int64 `json:"connectedAt,omitempty"`
	LastActive  *int64 `json:"lastActive,omitempty"`
}

// GetActiveSessions lists connected sessions merged with the registry's
// activity records. Connected sessions sort first, then by last activity.
// Disconnected sessions idle longer than SessionRetention are removed from
// the registry.
func (r *Relay) GetActiveSessions(ctx context.Context) []SessionEntry {
	entries := make(map[string]*SessionEntry)

	r.mu.RLock()
	for id, live := range r.sessions {
		connectedAt := live.connectedAt
		entries[id] = &SessionEntry{ID: id, Connected: true, ConnectedAt: &connectedAt}
	}
	r.mu.RUnlock()

	if r.registry != nil {
		stored, err := r.registry.ListSessions(ctx)
		if err != nil {
			logrus.WithError(err).Warn("failed to list sessions from registry")
		}
		cutoff := r.now().Add(-SessionRetention).UnixMilli()
		for _, info := range stored {
			entry, ok := entries[info.ID]
			if !ok && info.LastActive < cutoff {
				r.forget(ctx, info.ID)
				continue
			}
			if !ok {
				entry = &SessionEntry{ID: info.ID}
				entries[info.ID] = entry
			}
			if info.LastActive > 0 {
				lastActive := info.LastActive
				entry.LastActive = &lastActive
			}
		}
	}

	list := make([]SessionEntry, 0, len(entries))
	for _, entry := range entries {
		list = append(list, *entry)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Connected != list[j].Connected {
			return list[i].Connected
		}
		li, lj := deref(list[i].LastActive), deref(list[j].LastActive)
		if li == lj {
			return list[i].ID < list[j].ID
		}
		return li > lj
	})
	return list
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// TextToHTML escapes s and keeps its layout when shown in a browser.
func TextToHTML(s string) string {
	return htmlLayout.Replace(html.EscapeString(s))
}

var htmlLayout = strings.NewReplacer(
	"\r\n", "<br/>",
	"\n", "<br/>",
	"\r", "<br/>",
	" ", "&nbsp;",
	"\t", "&nbsp;",
	"\f", "&nbsp;",
	"\v", "&nbsp;",
)
