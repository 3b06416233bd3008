package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/logging"
)

const slotTTL = 60 * time.Second

// SlotCache is a read-through projection of computed slot lists. The ledger
// stays the only source of truth: entries are short-lived and every booking
// write invalidates the seller/date they touch.
type SlotCache struct {
	client *redis.Client
}

func NewSlotCache(addr string) *SlotCache {
	if addr == "" {
		return nil
	}
	return &SlotCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func slotKey(sellerID uint, date string, serviceID uint) string {
	return fmt.Sprintf("slots:%d:%s:%d", sellerID, date, serviceID)
}

func (c *SlotCache) Get(
	ctx context.Context,
	sellerID uint,
	date string,
	serviceID uint,
) ([]domain.TimeSlot, bool) {

	raw, err := c.client.Get(ctx, slotKey(sellerID, date, serviceID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logging.Log.Warn("slot cache read failed", zap.Error(err))
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	sellerID uint,
	date string,
	serviceID uint,
	slots []domain.TimeSlot,
) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKey(sellerID, date, serviceID), raw, slotTTL).Err(); err != nil {
		logging.Log.Warn("slot cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached projection for one seller/date, whatever
// the service.
func (c *SlotCache) Invalidate(ctx context.Context, sellerID uint, date string) {
	pattern := fmt.Sprintf("slots:%d:%s:*", sellerID, date)
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logging.Log.Warn("slot cache invalidate failed", zap.Error(err))
	}
}
