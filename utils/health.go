package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pinger is anything the health monitor can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MongoPinger adapts a mongo client to Pinger.
type MongoPinger struct{ Client *mongo.Client }

func (p MongoPinger) Ping(ctx context.Context) error { return p.Client.Ping(ctx, nil) }

// RedisPinger adapts a redis client to Pinger.
type RedisPinger struct{ Client *redis.Client }

func (p RedisPinger) Ping(ctx context.Context) error { return p.Client.Ping(ctx).Err() }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every configured dependency answered.
func (s HealthStatus) Healthy() bool {
	return s.Mongo && (s.Redis == nil || *s.Redis)
}

// HealthMonitor keeps the latest health snapshot in memory.
type HealthMonitor struct {
	mongo Pinger
	redis Pinger

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor creates a monitor. redis may be nil when Redis is disabled.
func NewHealthMonitor(db Pinger, cache Pinger) *HealthMonitor {
	return &HealthMonitor{mongo: db, redis: cache}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check probes every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     m.mongo.Ping(ctx) == nil,
		CheckedAt: time.Now(),
	}
	if m.redis != nil {
		ok := m.redis.Ping(ctx) == nil
		status.Redis = &ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start runs Check immediately and then on every tick until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
