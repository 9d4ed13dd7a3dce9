package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Storage   string    `json:"storage"`
	Mongo     *bool     `json:"mongo,omitempty"`
	Redis     []bool    `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings the optional backing services.
type HealthMonitor struct {
	storage      string
	redisClients []*redis.Client
	mongoClient  *mongo.Client

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor; nil clients are skipped.
func NewHealthMonitor(storage string, redisClients []*redis.Client, mongoClient *mongo.Client) *HealthMonitor {
	m := &HealthMonitor{storage: storage, mongoClient: mongoClient}
	for _, c := range redisClients {
		if c != nil {
			m.redisClients = append(m.redisClients, c)
		}
	}
	m.current = HealthStatus{Storage: storage, CheckedAt: time.Now()}
	return m
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every configured service once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{Storage: m.storage}
	for _, client := range m.redisClients {
		status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
	}
	if m.mongoClient != nil {
		ok := m.mongoClient.Ping(ctx, nil) == nil
		status.Mongo = &ok
	}
	status.CheckedAt = time.Now()

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.Check(ctx)
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
