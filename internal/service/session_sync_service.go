package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Accounts are scanned 500 at a time. Each batch gets its own pipeline.
	sessionSyncBatchSize = 500

	sessionSyncTimeout = 30 * time.Second
)

// SessionSyncService drops the live-token record of every account that can no
// longer sign in: deactivated or soft-deleted users. The access guard already
// refuses their tokens.
type SessionSyncService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	interval    time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	started  atomic.Bool
	stopped  atomic.Bool
}

func NewSessionSyncService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, interval time.Duration) *SessionSyncService {
	return &SessionSyncService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start runs one sweep right away and then one per interval until Stop.
func (s *SessionSyncService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	s.wg.Add(1)
	go s.loop()
}

// Stop waits for a running sweep to finish. Safe to call multiple times.
func (s *SessionSyncService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SessionSyncService stopped")
	}
}

func (s *SessionSyncService) loop() {
	defer s.wg.Done()

	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *SessionSyncService) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), sessionSyncTimeout)
	defer cancel()

	if _, err := s.Sweep(ctx); err != nil {
		s.log.Warnf("Session sweep failed: %+v", err)
	}
}

// Sweep deletes stale live-token records and returns how many were removed.
func (s *SessionSyncService) Sweep(ctx context.Context) (int64, error) {
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return 0, fmt.Errorf("redis ping failed: %w", err)
	}

	startTime := time.Now()
	offset := 0
	var removed int64

	for {
		var userIDs []uuid.UUID
		err := s.db.WithContext(ctx).Unscoped().
			Model(&entity.User{}).
			Where("is_active = ? OR deleted_at IS NOT NULL", false).
			Order("id").
			Limit(sessionSyncBatchSize).
			Offset(offset).
			Pluck("id", &userIDs).Error
		if err != nil {
			return removed, fmt.Errorf("query inactive users at offset %d: %w", offset, err)
		}
		if len(userIDs) == 0 {
			break
		}

		pipe := s.redisClient.Pipeline()
		cmds := make([]*redis.IntCmd, 0, len(userIDs))
		for _, userID := range userIDs {
			cmds = append(cmds, pipe.Del(ctx, accessTokenKey(userID)))
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return removed, fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}
		for _, cmd := range cmds {
			removed += cmd.Val()
		}

		if len(userIDs) < sessionSyncBatchSize {
			break
		}
		offset += sessionSyncBatchSize

		select {
		case <-ctx.Done():
			return removed, ctx.Err()
		default:
		}
	}

	s.log.WithFields(logrus.Fields{
		"removed":  removed,
		"duration": time.Since(startTime).String(),
	}).Info("Session sweep completed")

	return removed, nil
}
