package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pkgerr "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultChannel     = "cafeteria:stock:notifications"
	DefaultHistoryKey  = "cafeteria:stock:history"
	DefaultHistorySize = 100
)

// Appends to the capped history list and publishes in one round trip, so a
// subscriber that sees a message can always find it in the history.
var publishNotificationScript = redis.NewScript(`
local key = KEYS[1]
local channel = ARGV[1]
local payload = ARGV[2]
local size = tonumber(ARGV[3])

redis.call('RPUSH', key, payload)
redis.call('LTRIM', key, -size, -1)

return redis.call('PUBLISH', channel, payload)
`)

// Envelope is the JSON document published for every notification.
type Envelope struct {
	ID          string    `json:"id"`
	Store       string    `json:"store"`
	Message     string    `json:"message"`
	PublishedAt time.Time `json:"published_at"`
}

type RedisPublisherConfig struct {
	Store       string
	Channel     string
	HistoryKey  string
	HistorySize int
}

// RedisPublisher is a listener forwarding notifications to a redis channel.
type RedisPublisher struct {
	client *redis.Client
	cfg    RedisPublisherConfig
	now    func() time.Time
}

func NewRedisPublisher(client *redis.Client, cfg RedisPublisherConfig) *RedisPublisher {
	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}
	if cfg.HistoryKey == "" {
		cfg.HistoryKey = DefaultHistoryKey
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	return &RedisPublisher{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (r *RedisPublisher) Receive(ctx context.Context, message string) error {
	payload, err := json.Marshal(Envelope{
		ID:          uuid.New().String(),
		Store:       r.cfg.Store,
		Message:     message,
		PublishedAt: r.now().UTC(),
	})
	if err != nil {
		return pkgerr.Wrap(err, "marshal envelope")
	}

	err = publishNotificationScript.Run(ctx, r.client, []string{r.cfg.HistoryKey},
		r.cfg.Channel, string(payload), r.cfg.HistorySize).Err()
	if err != nil {
		return pkgerr.Wrap(err, "publish notification")
	}

	return nil
}

// History returns the retained envelopes, oldest first.
func (r *RedisPublisher) History(ctx context.Context) ([]Envelope, error) {
	raw, err := r.client.LRange(ctx, r.cfg.HistoryKey, 0, -1).Result()
	if err != nil {
		return nil, pkgerr.Wrap(err, "read history")
	}

	history := make([]Envelope, 0, len(raw))
	for _, item := range raw {
		var env Envelope
		if err := json.Unmarshal([]byte(item), &env); err != nil {
			return nil, pkgerr.Wrap(err, "unmarshal envelope")
		}
		history = append(history, env)
	}

	return history, nil
}
