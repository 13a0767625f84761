package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"persona-engine/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

// ErrSnapshotNotFound is returned when no snapshot was archived for a
// session id.
var ErrSnapshotNotFound = errors.New("session snapshot not found")

// SessionArchive stores exported session snapshots in Redis so the external
// download collaborator can pick them up after the conversation ended.
// Keys are namespaced "{prefix}:session:{id}".
type SessionArchive struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSessionArchive(client *redis.Client, prefix string, ttl time.Duration) *SessionArchive {
	if prefix == "" {
		prefix = "persona-engine"
	}
	return &SessionArchive{client: client, prefix: prefix, ttl: ttl}
}

func (a *SessionArchive) key(sessionID string) string {
	return fmt.Sprintf("%s:session:%s", a.prefix, sessionID)
}

func (a *SessionArchive) Save(ctx context.Context, snapshot entities.SessionSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := a.client.Set(ctx, a.key(snapshot.SessionID), payload, a.ttl).Err(); err != nil {
		return fmt.Errorf("archive snapshot %s: %w", snapshot.SessionID, err)
	}
	return nil
}

func (a *SessionArchive) Load(ctx context.Context, sessionID string) (entities.SessionSnapshot, error) {
	payload, err := a.client.Get(ctx, a.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return entities.SessionSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return entities.SessionSnapshot{}, fmt.Errorf("load snapshot %s: %w", sessionID, err)
	}

	var snapshot entities.SessionSnapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return entities.SessionSnapshot{}, fmt.Errorf("decode snapshot %s: %w", sessionID, err)
	}
	return snapshot, nil
}
