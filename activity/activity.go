package activity

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
)

const (
	feedKey    = "activity_feed"
	feedLength = 100
)

// Entry is one line in the dashboard's recent-activity feed.
type Entry struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}

// Log records dashboard actions in a capped Redis list, newest first.
type Log struct {
	client *redis.Client
}

// NewLog creates a new Log instance, ensuring that RedisClient is not nil.
func NewLog() (*Log, error) {
	if database.RedisClient == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &Log{client: database.RedisClient}, nil
}

// Record pushes a new entry onto the feed and trims it to the cap.
func (l *Log) Record(ctx context.Context, action, detail string) error {
	if l == nil || l.client == nil {
		return errors.New("Redis client is not initialized")
	}
	entry := Entry{
		ID:     uuid.New().String(),
		Action: action,
		Detail: detail,
		At:     time.Now().UTC(),
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := l.client.LPush(ctx, feedKey, encoded).Err(); err != nil {
		return err
	}
	return l.client.LTrim(ctx, feedKey, 0, feedLength-1).Err()
}

// Recent returns up to n feed entries, newest first.
func (l *Log) Recent(ctx context.Context, n int) ([]Entry, error) {
	if l == nil || l.client == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	if n <= 0 || n > feedLength {
		n = feedLength
	}
	values, err := l.client.LRange(ctx, feedKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(values))
	for _, value := range values {
		var entry Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
