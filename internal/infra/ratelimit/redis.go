package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "mddroner:ratelimit:"

// tokenBucketScript атомарно пополняет корзину и списывает токен
// Возвращает {allowed, tokens, retry_after_ms}
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals)
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RedisLimiter общий для всех экземпляров сервиса лимит на Redis
type RedisLimiter struct {
	rdb      redis.Scripter
	settings Settings
	now      func() time.Time
}

// NewRedisLimiter создает лимитер поверх клиента go-redis
func NewRedisLimiter(rdb redis.Scripter, settings Settings) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, settings: settings, now: time.Now}
}

// Allow списывает токен для ключа
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	interval := l.settings.refillInterval()
	// Корзина полностью восстанавливается за capacity интервалов, дольше хранить ключ незачем
	ttl := int64((interval*time.Duration(l.settings.Capacity+1))/time.Second) + 1

	vals, err := tokenBucketScript.Run(ctx, l.rdb, []string{keyPrefix + key},
		l.now().UnixMilli(),
		l.settings.Capacity,
		interval.Milliseconds(),
		ttl,
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("%w: run script: %v", ErrLimiterUnavailable, err)
	}
	if len(vals) != 3 {
		return Decision{}, fmt.Errorf("%w: unexpected script result %v", ErrLimiterUnavailable, vals)
	}

	return Decision{
		Allowed:    vals[0] == 1,
		Remaining:  int(vals[1]),
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

// String описание для логов
func (l *RedisLimiter) String() string {
	return "redis(capacity=" + strconv.Itoa(l.settings.Capacity) + ")"
}
