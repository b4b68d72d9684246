package redis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const slotsTTL = 30 * time.Second

// InitRedis connects the slot cache. The cache is optional: when
// REDIS_ADDR is unset the service runs without it.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, running without slot cache")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Failed to connect to Redis, running without slot cache: %v", err)
		Client = nil
		return
	}
	fmt.Println("✅ Connected to Redis")
}

func slotsKey(doctorID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", doctorID, date)
}

// GetSlots returns the cached available-slots JSON for (doctor, date),
// or "" on a miss.
func GetSlots(doctorID uint, date string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, slotsKey(doctorID, date)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetSlots caches the available-slots JSON for a short TTL.
func SetSlots(doctorID uint, date string, payload []byte) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, slotsKey(doctorID, date), payload, slotsTTL)
}

// InvalidateSlots drops the cached entry after a booking mutation so the
// next read reflects the new occupancy.
func InvalidateSlots(doctorID uint, date string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, slotsKey(doctorID, date))
}
