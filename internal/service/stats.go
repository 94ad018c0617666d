package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentCallsWindow bounds the average-interval computation to the latest calls
const recentCallsWindow = 10

// StatisticsService derives queue metrics purely by reading the rotation
// audit log. Only genuine "called next" events count: action=advanced with
// position_before=1.
type StatisticsService struct {
	queueRepo repository.QueueRepositoryInterface
	logRepo   repository.RotationLogRepositoryInterface

	// now is swapped in tests to pin the clock
	now func() time.Time
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(
	queueRepo repository.QueueRepositoryInterface,
	logRepo repository.RotationLogRepositoryInterface,
) *StatisticsService {
	return &StatisticsService{
		queueRepo: queueRepo,
		logRepo:   logRepo,
		now:       time.Now,
	}
}

// QueueStatistics represents derived call metrics for a queue
type QueueStatistics struct {
	QueueID                uuid.UUID `json:"queue_id"`
	CalledToday            int64     `json:"called_today"`
	CalledYesterday        int64     `json:"called_yesterday"`
	MinutesSinceLastCall   int       `json:"minutes_since_last_call"`
	AverageIntervalMinutes int       `json:"average_interval_minutes"`
}

// GetStatistics computes call counts and timing metrics for a queue
func (s *StatisticsService) GetStatistics(queueID uuid.UUID) (*QueueStatistics, error) {
	if _, err := s.queueRepo.GetByID(queueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	now := s.now()

	calledToday, err := s.logRepo.CountCalledOn(queueID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's calls: %w", err)
	}
	calledYesterday, err := s.logRepo.CountCalledOn(queueID, now.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to count yesterday's calls: %w", err)
	}

	recent, err := s.logRepo.GetRecentCalls(queueID, recentCallsWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent calls: %w", err)
	}

	stats := &QueueStatistics{
		QueueID:         queueID,
		CalledToday:     calledToday,
		CalledYesterday: calledYesterday,
	}

	if len(recent) > 0 {
		elapsed := now.Sub(recent[0].CreatedAt).Minutes()
		if minutes := int(math.Round(elapsed)); minutes > 0 {
			stats.MinutesSinceLastCall = minutes
		}
	}

	// recent is ordered newest first, so consecutive gaps are non-negative by
	// construction.
	if len(recent) > 1 {
		total := 0
		for i := 0; i < len(recent)-1; i++ {
			gap := recent[i].CreatedAt.Sub(recent[i+1].CreatedAt).Minutes()
			total += int(math.Round(gap))
		}
		stats.AverageIntervalMinutes = int(math.Round(float64(total) / float64(len(recent)-1)))
	}

	return stats, nil
}
