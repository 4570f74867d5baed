// README: Query-log store backed by Postgres rows and Redis day counters.
package querylog

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

// Insert appends one query_log row.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO query_log (query, location, wants_weather, wants_places, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.Query, rec.Location, rec.WantsWeather, rec.WantsPlaces, rec.Duration.Milliseconds(), rec.CreatedAt)
	return err
}

// BumpCounter increments the day counter for one intent kind ("weather" or
// "places") and refreshes its TTL in the same round trip.
func (s *Store) BumpCounter(ctx context.Context, day, kind string) error {
	key := counterKey(day, kind)
	pipe := s.redis.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, counterTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Counters reads both intent counters for the given day. Missing keys count
// as zero.
func (s *Store) Counters(ctx context.Context, day string) (Stats, error) {
	vals, err := s.redis.MGet(ctx, counterKey(day, "weather"), counterKey(day, "places")).Result()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Day: day}
	st.Weather = asInt64(vals[0])
	st.Places = asInt64(vals[1])
	return st, nil
}

func counterKey(day, kind string) string {
	return "compass:intents:" + day + ":" + kind
}

func asInt64(v any) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
