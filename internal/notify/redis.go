package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rickmorty/catalog/internal/config"
	"rickmorty/catalog/internal/domain"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Publisher announces finished catalog loads
type Publisher interface {
	Publish(ctx context.Context, report *domain.LoadReport) error
	Close() error
}

type RedisPublisher struct {
	redisClient *redis.Client
	channel     string
	timeout     time.Duration
}

// NewRedisPublisher connects to Redis and checks the connection before returning
func NewRedisPublisher(ctx context.Context, cfg config.RedisConfig) (*RedisPublisher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("✅ Connected to Redis successfully")

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &RedisPublisher{
		redisClient: rdb,
		channel:     cfg.Channel,
		timeout:     timeout,
	}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, report *domain.LoadReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize load report: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	receivers, err := p.redisClient.Publish(publishCtx, p.channel, body).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", p.channel, err)
	}

	log.Debugf("Published load %s to %s (%d receivers)", report.ID, p.channel, receivers)
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.redisClient.Close()
}

type noopPublisher struct{}

// NewNoopPublisher drops every report
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, *domain.LoadReport) error { return nil }

func (noopPublisher) Close() error { return nil }
