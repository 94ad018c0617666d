//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"lead-rotation-backend/internal/database/models"
	"lead-rotation-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RotationLogRepositoryTestSuite tests the RotationLogRepository
type RotationLogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RotationLogRepository
	factories     *testutils.FactorySet
	queue         *models.Queue
	agent         *models.Agent
}

// SetupSuite runs before all tests in the suite
func (suite *RotationLogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRotationLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RotationLogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds one queue and agent
func (suite *RotationLogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.queue = suite.factories.Queue.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.queue).Error)
	suite.agent = suite.factories.Agent.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.agent).Error)
}

// TearDownTest runs after each test
func (suite *RotationLogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCountCalledOnDayBoundaries tests that the count honors calendar day boundaries
func (suite *RotationLogRepositoryTestSuite) TestCountCalledOnDayBoundaries() {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	for _, at := range []time.Time{today, today.Add(time.Hour), yesterday} {
		entry := suite.factories.RotationLog.Advanced(suite.queue.ID, suite.agent.ID, 3, at)
		suite.NoError(suite.repo.Create(entry))
	}

	countToday, err := suite.repo.CountCalledOn(suite.queue.ID, today)
	suite.NoError(err)
	suite.Equal(int64(2), countToday)

	countYesterday, err := suite.repo.CountCalledOn(suite.queue.ID, yesterday)
	suite.NoError(err)
	suite.Equal(int64(1), countYesterday)
}

// TestCountCalledOnExcludesRemovals tests that removal entries never count as calls
func (suite *RotationLogRepositoryTestSuite) TestCountCalledOnExcludesRemovals() {
	advanced := suite.factories.RotationLog.Advanced(suite.queue.ID, suite.agent.ID, 2, time.Now())
	suite.NoError(suite.repo.Create(advanced))
	removed := suite.factories.RotationLog.Removed(suite.queue.ID, suite.agent.ID, 2)
	suite.NoError(suite.repo.Create(removed))

	count, err := suite.repo.CountCalledOn(suite.queue.ID, time.Now())

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestGetRecentCalls tests ordering and the limit
func (suite *RotationLogRepositoryTestSuite) TestGetRecentCalls() {
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		entry := suite.factories.RotationLog.Advanced(
			suite.queue.ID, suite.agent.ID, 3, base.Add(time.Duration(i)*time.Minute))
		suite.NoError(suite.repo.Create(entry))
	}

	calls, err := suite.repo.GetRecentCalls(suite.queue.ID, 3)

	suite.NoError(err)
	suite.Len(calls, 3)
	// Newest first.
	suite.True(calls[0].CreatedAt.After(calls[1].CreatedAt))
	suite.True(calls[1].CreatedAt.After(calls[2].CreatedAt))
}

// TestGetByQueuePreloadsAgent tests that audit entries carry agent display data
func (suite *RotationLogRepositoryTestSuite) TestGetByQueuePreloadsAgent() {
	entry := suite.factories.RotationLog.Advanced(suite.queue.ID, suite.agent.ID, 2, time.Now())
	suite.NoError(suite.repo.Create(entry))

	logs, err := suite.repo.GetByQueue(suite.queue.ID, 10)

	suite.NoError(err)
	suite.Len(logs, 1)
	suite.Equal(suite.agent.Email, logs[0].Agent.Email)
}

func TestRotationLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RotationLogRepositoryTestSuite))
}
