package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/furqanmax/Simple-POS/internal/models"
)

const (
	settingsKey    = "pos:settings"
	templateKeyFmt = "pos:template:%d"

	settingsTTL = 5 * time.Minute
	templateTTL = 10 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. The cache degrades gracefully: when
// Redis is unreachable every lookup misses and every store is a no-op.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCachedSettings returns the cached settings row if present.
func GetCachedSettings(ctx context.Context) (*models.Settings, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, settingsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var s models.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, false
	}
	return &s, true
}

// CacheSettings stores the settings row.
func CacheSettings(ctx context.Context, s *models.Settings) {
	if client == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	client.Set(ctx, settingsKey, data, settingsTTL)
}

// InvalidateSettings drops the cached settings row (call after updates).
func InvalidateSettings(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, settingsKey)
}

// GetCachedTemplate returns a cached invoice template if present.
func GetCachedTemplate(ctx context.Context, id int) (*models.InvoiceTemplate, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(templateKeyFmt, id)).Bytes()
	if err != nil {
		return nil, false
	}
	var t models.InvoiceTemplate
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, false
	}
	return &t, true
}

// CacheTemplate stores an invoice template.
func CacheTemplate(ctx context.Context, t *models.InvoiceTemplate) {
	if client == nil {
		return
	}
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(templateKeyFmt, t.ID), data, templateTTL)
}

// InvalidateTemplate drops one cached template.
func InvalidateTemplate(ctx context.Context, id int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(templateKeyFmt, id))
}
