package cache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// PendingAssessments tracks the grading window for ungraded assessments.
// A key is opened with a TTL when the quiz is generated; grading consumes
// it atomically, so an assessment is graded at most once and only while
// the window is open.
type PendingAssessments interface {
	Open(ctx context.Context, assessmentID uint, ttl time.Duration) error

	// Claim consumes the pending marker. Returns false when the marker is
	// absent: the window expired or another grading call already claimed it.
	Claim(ctx context.Context, assessmentID uint) (bool, error)
}

type redisPending struct {
	rdb *goredis.Client
}

// NewRedisPending connects to redis and verifies the connection.
func NewRedisPending(addr string) (PendingAssessments, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisPending{rdb: rdb}, nil
}

func pendingKey(assessmentID uint) string {
	return fmt.Sprintf("assessment:%d:pending", assessmentID)
}

func (p *redisPending) Open(ctx context.Context, assessmentID uint, ttl time.Duration) error {
	return p.rdb.Set(ctx, pendingKey(assessmentID), "1", ttl).Err()
}

func (p *redisPending) Claim(ctx context.Context, assessmentID uint) (bool, error) {
	err := p.rdb.GetDel(ctx, pendingKey(assessmentID)).Err()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis getdel: %w", err)
	}
	return true, nil
}
