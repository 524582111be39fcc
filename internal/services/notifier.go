package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ahsan589/playspot/internal/models"
	"github.com/redis/go-redis/v9"
)

// Notifier is the toast surface. Notify never fails the caller's operation.
type Notifier interface {
	Notify(ctx context.Context, userId string, toast models.Toast) error
	Drain(ctx context.Context, userId string) ([]models.Toast, error)
}

func toastKey(userId string) string {
	return "toasts:" + userId
}

type RedisNotifier struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisNotifier(client *redis.Client, ttl time.Duration) *RedisNotifier {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisNotifier{client: client, ttl: ttl, now: time.Now}
}

func (n *RedisNotifier) Notify(ctx context.Context, userId string, toast models.Toast) error {
	if toast.CreatedAt.IsZero() {
		toast.CreatedAt = n.now().UTC()
	}
	body, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("marshal toast: %w", err)
	}
	key := toastKey(userId)
	if err := n.client.RPush(ctx, key, string(body)).Err(); err != nil {
		return fmt.Errorf("push toast: %w", err)
	}
	if err := n.client.Expire(ctx, key, n.ttl).Err(); err != nil {
		return fmt.Errorf("expire toasts: %w", err)
	}
	return nil
}

// Drain returns queued toasts oldest first and removes exactly those it returned.
func (n *RedisNotifier) Drain(ctx context.Context, userId string) ([]models.Toast, error) {
	key := toastKey(userId)
	raw, err := n.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read toasts: %w", err)
	}
	toasts := make([]models.Toast, 0, len(raw))
	if len(raw) == 0 {
		return toasts, nil
	}
	for _, r := range raw {
		var t models.Toast
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			continue
		}
		toasts = append(toasts, t)
	}
	if err := n.client.LTrim(ctx, key, int64(len(raw)), -1).Err(); err != nil {
		return nil, fmt.Errorf("trim toasts: %w", err)
	}
	return toasts, nil
}

// MemoryNotifier keeps toasts in process. Used when Redis is not configured.
type MemoryNotifier struct {
	mu     sync.Mutex
	toasts map[string][]models.Toast
	now    func() time.Time
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{toasts: make(map[string][]models.Toast), now: time.Now}
}

func (n *MemoryNotifier) Notify(ctx context.Context, userId string, toast models.Toast) error {
	if toast.CreatedAt.IsZero() {
		toast.CreatedAt = n.now().UTC()
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts[userId] = append(n.toasts[userId], toast)
	return nil
}

func (n *MemoryNotifier) Drain(ctx context.Context, userId string) ([]models.Toast, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.toasts[userId]
	delete(n.toasts, userId)
	if out == nil {
		out = []models.Toast{}
	}
	return out, nil
}
