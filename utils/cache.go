package utils

import (
	"context"
	"log"
	"time"

	"sagashealth/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds session-scoped booking and payment records.
	SessionCacheClient *redis.Client
	// GeoCacheClient holds geocoding results keyed by address.
	GeoCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for session-scoped records.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the session record cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitGeoCache initializes the Redis client for geocoding results.
func InitGeoCache() {
	GeoCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisGeoDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := GeoCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Geo Cache): %v", err)
	}
}

// GetGeoCacheClient returns the geocoding cache client.
func GetGeoCacheClient() *redis.Client {
	if GeoCacheClient == nil {
		InitGeoCache()
	}
	return GeoCacheClient
}
