package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	healthCheckInterval = 60 * time.Second
	healthCheckTimeout  = 5 * time.Second
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor checks both backends once, then keeps the snapshot
// fresh on a fixed interval. The first check is synchronous so /health
// never serves an unprimed zero-value snapshot at startup.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	updateHealth(redisClient, mongoClient)

	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		for range ticker.C {
			updateHealth(redisClient, mongoClient)
		}
	}()
}

// updateHealth pings both backends and swaps in a fresh snapshot. Each round
// is bounded so a hung backend cannot stall the monitor.
func updateHealth(redisClient *redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	redisHealthy := redisClient.Ping(ctx).Err() == nil
	mongoHealthy := mongoClient.Ping(ctx, nil) == nil

	mu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealthy,
		CheckedAt: time.Now(),
	}
	mu.Unlock()
}
