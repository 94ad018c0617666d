package service

import "time"

// SetNow pins the statistics clock in tests.
func (s *StatisticsService) SetNow(now func() time.Time) {
	s.now = now
}
