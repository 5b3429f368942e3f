package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"example.com/scoreboard/internal/game"
)

// RedisPublisher publishes board events as JSON on a Redis pub/sub channel.
// Nothing is stored: subscribers that are offline miss the event.
type RedisPublisher struct {
	rdb   *redis.Client
	board string
}

func NewRedisPublisher(rdb *redis.Client, board string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, board: board}
}

// Channel is the pub/sub channel events are published on.
func (p *RedisPublisher) Channel() string {
	return ChannelName(p.board)
}

func ChannelName(board string) string {
	return fmt.Sprintf("scoreboard:%s:events", board)
}

func (p *RedisPublisher) Deliver(ctx context.Context, ev game.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.Channel(), b).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.Channel(), err)
	}
	return nil
}
