package runner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fiber-ent-x-moderation/internal/redisx"
)

const checkpointTTL = 24 * time.Hour

// CheckpointStore persists the last pagination token per (account, block) so
// a later run can resume where the previous page ended.
type CheckpointStore interface {
	Load(ctx context.Context, accountID uuid.UUID, blockID string) (string, error)
	Save(ctx context.Context, accountID uuid.UUID, blockID, token string) error
}

// RedisCheckpoints keeps checkpoints in Redis for 24h.
type RedisCheckpoints struct {
	rdb *redisx.Client
}

func NewRedisCheckpoints(rdb *redisx.Client) *RedisCheckpoints {
	return &RedisCheckpoints{rdb: rdb}
}

func checkpointKey(accountID uuid.UUID, blockID string) string {
	return "blocks:cp:" + accountID.String() + ":" + blockID
}

func (s *RedisCheckpoints) Load(ctx context.Context, accountID uuid.UUID, blockID string) (string, error) {
	return s.rdb.Get(ctx, checkpointKey(accountID, blockID)).Result()
}

func (s *RedisCheckpoints) Save(ctx context.Context, accountID uuid.UUID, blockID, token string) error {
	return s.rdb.Set(ctx, checkpointKey(accountID, blockID), token, checkpointTTL).Err()
}
