package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barbearia-america/agenda-api/internal/config"
)

// A lista de horários é consultiva (o banco decide o conflito na gravação),
// então um TTL curto não compromete a correção.
const availabilityTTL = 30 * time.Second

type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(cfg *config.Config) *AvailabilityCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &AvailabilityCache{rdb: rdb}
}

func slotKey(barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date)
}

// Get retorna (slots, true) no hit; qualquer falha de redis vira miss
func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, bool) {

	raw, err := c.rdb.Get(ctx, slotKey(barberID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID uint,
	date string,
	slots []string,
) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, slotKey(barberID, date), raw, availabilityTTL)
}

// Invalidate derruba a lista após qualquer mutação de agenda
func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	barberID uint,
	date string,
) {
	c.rdb.Del(ctx, slotKey(barberID, date))
}
