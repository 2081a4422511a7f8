package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockPrefix   = "slotlock:"
	idPrefix     = "slotlock:id:"
	holderPrefix = "slotlock:holder:"
)

// acquireScript sets the lock hash only when no live lock exists, together
// with its id index and holder set entry. On conflict the stored lock is
// returned instead.
//
// KEYS: lock, id index, holder set
// ARGV: id, held_by, offering_id, date, start, end, created_at_ms, expires_at_ms, ttl_ms
var acquireScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
  local cur = redis.call("HMGET", KEYS[1], "id", "held_by", "created_at", "expires_at")
  return {0, cur[1], cur[2], cur[3], cur[4]}
end
redis.call("HSET", KEYS[1],
  "id", ARGV[1], "held_by", ARGV[2],
  "offering_id", ARGV[3], "date", ARGV[4], "start", ARGV[5], "end", ARGV[6],
  "created_at", ARGV[7], "expires_at", ARGV[8])
redis.call("PEXPIRE", KEYS[1], ARGV[9])
redis.call("SET", KEYS[2], KEYS[1], "PX", ARGV[9])
redis.call("SADD", KEYS[3], ARGV[1])
if redis.call("PTTL", KEYS[3]) < tonumber(ARGV[9]) then
  redis.call("PEXPIRE", KEYS[3], ARGV[9])
end
return {1}
`)

// releaseScript deletes the lock only while it still carries the given id.
//
// KEYS: lock, id index, holder set
// ARGV: id
var releaseScript = redis.NewScript(`
redis.call("SREM", KEYS[3], ARGV[1])
if redis.call("HGET", KEYS[1], "id") == ARGV[1] then
  redis.call("DEL", KEYS[1], KEYS[2])
  return 1
end
return 0
`)

// SlotLockStore keeps slot locks as Redis hashes with native expiry.
type SlotLockStore struct {
	rdb   redis.UniversalClient
	clock clock.Clock
}

func NewSlotLockStore(rdb redis.UniversalClient, clk clock.Clock) *SlotLockStore {
	return &SlotLockStore{rdb: rdb, clock: clk}
}

func lockKey(k slotlock.Key) string     { return lockPrefix + k.String() }
func idKey(id uuid.UUID) string         { return idPrefix + id.String() }
func holderKey(holder uuid.UUID) string { return holderPrefix + holder.String() }
func unixMillis(t time.Time) string     { return strconv.FormatInt(t.UnixMilli(), 10) }
func fromMillis(ms int64) time.Time     { return time.UnixMilli(ms).UTC() }

func (s *SlotLockStore) Acquire(ctx context.Context, lock *slotlock.Lock) (*slotlock.Lock, bool, error) {
	k := lock.Key()
	ttl := lock.TTL(s.clock.Now())
	if ttl < time.Millisecond {
		ttl = time.Millisecond
	}

	res, err := acquireScript.Run(ctx, s.rdb,
		[]string{lockKey(k), idKey(lock.ID()), holderKey(lock.HeldBy())},
		lock.ID().String(),
		lock.HeldBy().String(),
		k.OfferingID.String(),
		k.Date.String(),
		k.Start.String(),
		k.End.String(),
		unixMillis(lock.CreatedAt()),
		unixMillis(lock.ExpiresAt()),
		ttl.Milliseconds(),
	).Slice()
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	if len(res) == 0 {
		return nil, false, infra.WrapRepoErr("unexpected acquire script result", nil)
	}
	if acquired, _ := res[0].(int64); acquired == 1 {
		return lock, true, nil
	}

	current, err := parseConflict(k, res)
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to decode stored slot lock", err)
	}
	return current, false, nil
}

func parseConflict(k slotlock.Key, res []interface{}) (*slotlock.Lock, error) {
	if len(res) != 5 {
		return nil, fmt.Errorf("conflict result has %d fields", len(res))
	}
	fields := make([]string, 4)
	for i := range fields {
		v, ok := res[i+1].(string)
		if !ok {
			return nil, fmt.Errorf("field %d is %T", i, res[i+1])
		}
		fields[i] = v
	}
	return decodeLock(k, fields[0], fields[1], fields[2], fields[3])
}

func decodeLock(k slotlock.Key, id, heldBy, createdAt, expiresAt string) (*slotlock.Lock, error) {
	lockID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	holder, err := uuid.Parse(heldBy)
	if err != nil {
		return nil, err
	}
	created, err := strconv.ParseInt(createdAt, 10, 64)
	if err != nil {
		return nil, err
	}
	expires, err := strconv.ParseInt(expiresAt, 10, 64)
	if err != nil {
		return nil, err
	}
	return slotlock.Reconstruct(lockID, k, holder, fromMillis(created), fromMillis(expires)), nil
}

func (s *SlotLockStore) Get(ctx context.Context, key slotlock.Key) (*slotlock.Lock, error) {
	return s.getHash(ctx, lockKey(key))
}

func (s *SlotLockStore) getHash(ctx context.Context, name string) (*slotlock.Lock, error) {
	h, err := s.rdb.HGetAll(ctx, name).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read slot lock", err)
	}
	if len(h) == 0 {
		return nil, nil
	}

	k, err := decodeKey(h)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode slot lock key", err)
	}
	lock, err := decodeLock(k, h["id"], h["held_by"], h["created_at"], h["expires_at"])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode slot lock", err)
	}
	if lock.IsExpired(s.clock.Now()) {
		return nil, nil
	}
	return lock, nil
}

func decodeKey(h map[string]string) (slotlock.Key, error) {
	offeringID, err := uuid.Parse(h["offering_id"])
	if err != nil {
		return slotlock.Key{}, err
	}
	date, err := recurrence.ParseDate(h["date"])
	if err != nil {
		return slotlock.Key{}, err
	}
	start, err := recurrence.ParseTimeOfDay(h["start"])
	if err != nil {
		return slotlock.Key{}, err
	}
	end, err := recurrence.ParseTimeOfDay(h["end"])
	if err != nil {
		return slotlock.Key{}, err
	}
	return slotlock.Key{OfferingID: offeringID, Date: date, Start: start, End: end}, nil
}

func (s *SlotLockStore) GetByID(ctx context.Context, id uuid.UUID) (*slotlock.Lock, error) {
	name, err := s.rdb.Get(ctx, idKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read slot lock index", err)
	}
	lock, err := s.getHash(ctx, name)
	if err != nil || lock == nil {
		return nil, err
	}
	// The key may have been taken over after this id expired.
	if lock.ID() != id {
		return nil, nil
	}
	return lock, nil
}

func (s *SlotLockStore) ListHeldBy(ctx context.Context, holder uuid.UUID) ([]*slotlock.Lock, error) {
	ids, err := s.rdb.SMembers(ctx, holderKey(holder)).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list held slot locks", err)
	}

	var out []*slotlock.Lock
	var stale []interface{}
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			stale = append(stale, raw)
			continue
		}
		lock, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if lock == nil || !lock.IsHeldBy(holder) {
			stale = append(stale, raw)
			continue
		}
		out = append(out, lock)
	}
	if len(stale) > 0 {
		// Best effort; members expire with the set anyway.
		_ = s.rdb.SRem(ctx, holderKey(holder), stale...).Err()
	}
	return out, nil
}

func (s *SlotLockStore) Release(ctx context.Context, lock *slotlock.Lock) (bool, error) {
	n, err := releaseScript.Run(ctx, s.rdb,
		[]string{lockKey(lock.Key()), idKey(lock.ID()), holderKey(lock.HeldBy())},
		lock.ID().String(),
	).Int64()
	if err != nil {
		return false, infra.WrapRepoErr("failed to release slot lock", err)
	}
	return n == 1, nil
}

// DeleteExpired is a no-op: Redis expires lock keys natively.
func (s *SlotLockStore) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
