//go:build integration
// +build integration

package repository

import (
	"testing"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RosterRepositoryTestSuite tests the RosterRepository
type RosterRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RosterRepository
	logRepo       *RotationLogRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RosterRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRosterRepository(suite.baseTestSuite.DB)
	suite.logRepo = NewRotationLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RosterRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RosterRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RosterRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createQueueWithRoster persists a queue with n agents at positions 1..n and
// returns the queue plus agents in position order.
func (suite *RosterRepositoryTestSuite) createQueueWithRoster(n int) (*models.Queue, []*models.Agent) {
	queue := suite.factories.Queue.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(queue).Error)

	agents := make([]*models.Agent, 0, n)
	for i := 0; i < n; i++ {
		agent := suite.factories.Agent.Create()
		suite.NoError(suite.baseTestSuite.DB.Create(agent).Error)
		entry := suite.factories.RosterEntry.Create(queue.ID, agent.ID, i+1)
		suite.NoError(suite.baseTestSuite.DB.Create(entry).Error)
		agents = append(agents, agent)
	}
	return queue, agents
}

func (suite *RosterRepositoryTestSuite) positionsByAgent(queueID uuid.UUID) map[uuid.UUID]int {
	entries, err := suite.repo.GetActiveByQueue(queueID)
	suite.NoError(err)
	positions := make(map[uuid.UUID]int, len(entries))
	for _, e := range entries {
		positions[e.AgentID] = e.Position
	}
	return positions
}

// TestAdvanceHead tests the full rotation: head to the back, everyone else up one
func (suite *RosterRepositoryTestSuite) TestAdvanceHead() {
	queue, agents := suite.createQueueWithRoster(3)

	entry, newPosition, err := suite.repo.AdvanceHead(queue.ID)

	suite.NoError(err)
	suite.Equal(agents[0].ID, entry.AgentID)
	suite.Equal(3, newPosition)
	suite.Equal(3, entry.Position)

	positions := suite.positionsByAgent(queue.ID)
	suite.Equal(1, positions[agents[1].ID])
	suite.Equal(2, positions[agents[2].ID])
	suite.Equal(3, positions[agents[0].ID])
}

// TestAdvanceHeadWritesAudit tests that exactly one audit row is appended per turn
func (suite *RosterRepositoryTestSuite) TestAdvanceHeadWritesAudit() {
	queue, agents := suite.createQueueWithRoster(3)

	_, _, err := suite.repo.AdvanceHead(queue.ID)
	suite.NoError(err)

	logs, err := suite.logRepo.GetByQueue(queue.ID, 10)
	suite.NoError(err)
	suite.Len(logs, 1)
	suite.Equal(models.RotationActionAdvanced, logs[0].Action)
	suite.Equal(agents[0].ID, logs[0].AgentID)
	suite.Equal(1, logs[0].PositionBefore)
	suite.Equal(3, logs[0].PositionAfter)
}

// TestAdvanceHeadSingleMember tests that a one-member queue rotates in place
func (suite *RosterRepositoryTestSuite) TestAdvanceHeadSingleMember() {
	queue, agents := suite.createQueueWithRoster(1)

	entry, newPosition, err := suite.repo.AdvanceHead(queue.ID)

	suite.NoError(err)
	suite.Equal(agents[0].ID, entry.AgentID)
	suite.Equal(1, newPosition)

	// The turn is still recorded even though nobody moved.
	logs, err := suite.logRepo.GetByQueue(queue.ID, 10)
	suite.NoError(err)
	suite.Len(logs, 1)
	suite.Equal(1, logs[0].PositionAfter)
}

// TestAdvanceHeadEmptyQueue tests advancing a queue with no members
func (suite *RosterRepositoryTestSuite) TestAdvanceHeadEmptyQueue() {
	queue := suite.factories.Queue.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(queue).Error)

	entry, _, err := suite.repo.AdvanceHead(queue.ID)

	suite.Nil(entry)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAdvanceHeadIgnoresRemoved tests that removed entries do not count toward
// the tail position
func (suite *RosterRepositoryTestSuite) TestAdvanceHeadIgnoresRemoved() {
	queue, agents := suite.createQueueWithRoster(3)

	removedAgent := suite.factories.Agent.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(removedAgent).Error)
	removed := suite.factories.RosterEntry.Removed(queue.ID, removedAgent.ID, 4)
	suite.NoError(suite.baseTestSuite.DB.Create(removed).Error)

	_, newPosition, err := suite.repo.AdvanceHead(queue.ID)

	suite.NoError(err)
	suite.Equal(3, newPosition)

	positions := suite.positionsByAgent(queue.ID)
	suite.NotContains(positions, removedAgent.ID)
	suite.Equal(3, positions[agents[0].ID])
}

// TestAdvanceHeadFullCycle tests that N turns restore the original order
func (suite *RosterRepositoryTestSuite) TestAdvanceHeadFullCycle() {
	queue, agents := suite.createQueueWithRoster(3)

	for i := 0; i < 3; i++ {
		_, _, err := suite.repo.AdvanceHead(queue.ID)
		suite.NoError(err)
	}

	positions := suite.positionsByAgent(queue.ID)
	suite.Equal(1, positions[agents[0].ID])
	suite.Equal(2, positions[agents[1].ID])
	suite.Equal(3, positions[agents[2].ID])
}

// TestGetHead tests retrieving the agent whose turn is next
func (suite *RosterRepositoryTestSuite) TestGetHead() {
	queue, agents := suite.createQueueWithRoster(2)

	head, err := suite.repo.GetHead(queue.ID)

	suite.NoError(err)
	suite.Equal(agents[0].ID, head.AgentID)
	suite.Equal(agents[0].Email, head.Agent.Email)
}

// TestAddMember tests appending an agent at the tail
func (suite *RosterRepositoryTestSuite) TestAddMember() {
	queue, _ := suite.createQueueWithRoster(2)
	agent := suite.factories.Agent.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(agent).Error)

	entry, err := suite.repo.AddMember(queue.ID, agent.ID)

	suite.NoError(err)
	suite.Equal(3, entry.Position)
	suite.False(entry.Removed)
}

// TestAddMemberAlreadyMember tests adding a current member again
func (suite *RosterRepositoryTestSuite) TestAddMemberAlreadyMember() {
	queue, agents := suite.createQueueWithRoster(2)

	entry, err := suite.repo.AddMember(queue.ID, agents[0].ID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrAlreadyMember)
}

// TestAddMemberReactivatesRemoved tests that a removed entry rejoins at the
// tail instead of duplicating
func (suite *RosterRepositoryTestSuite) TestAddMemberReactivatesRemoved() {
	queue, agents := suite.createQueueWithRoster(3)

	_, err := suite.repo.RemoveMember(queue.ID, agents[0].ID)
	suite.NoError(err)

	entry, err := suite.repo.AddMember(queue.ID, agents[0].ID)

	suite.NoError(err)
	suite.Equal(3, entry.Position)
	suite.False(entry.Removed)
	suite.Nil(entry.RemovedAt)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.RosterEntry{}).
		Where("queue_id = ? AND agent_id = ?", queue.ID, agents[0].ID).
		Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestRemoveMemberRenumbers tests that removal keeps positions contiguous
func (suite *RosterRepositoryTestSuite) TestRemoveMemberRenumbers() {
	queue, agents := suite.createQueueWithRoster(4)

	entry, err := suite.repo.RemoveMember(queue.ID, agents[1].ID)

	suite.NoError(err)
	suite.True(entry.Removed)
	suite.NotNil(entry.RemovedAt)

	positions := suite.positionsByAgent(queue.ID)
	suite.Len(positions, 3)
	suite.Equal(1, positions[agents[0].ID])
	suite.Equal(2, positions[agents[2].ID])
	suite.Equal(3, positions[agents[3].ID])
}

// TestRemoveMemberWritesAudit tests the removal audit row
func (suite *RosterRepositoryTestSuite) TestRemoveMemberWritesAudit() {
	queue, agents := suite.createQueueWithRoster(2)

	_, err := suite.repo.RemoveMember(queue.ID, agents[1].ID)
	suite.NoError(err)

	logs, err := suite.logRepo.GetByQueue(queue.ID, 10)
	suite.NoError(err)
	suite.Len(logs, 1)
	suite.Equal(models.RotationActionRemoved, logs[0].Action)
	suite.Equal(agents[1].ID, logs[0].AgentID)
	suite.Equal(2, logs[0].PositionBefore)
}

// TestRemoveMemberNotMember tests removing an agent who is not on the roster
func (suite *RosterRepositoryTestSuite) TestRemoveMemberNotMember() {
	queue, _ := suite.createQueueWithRoster(2)
	outsider := suite.factories.Agent.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(outsider).Error)

	entry, err := suite.repo.RemoveMember(queue.ID, outsider.ID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotMember)
}

func TestRosterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RosterRepositoryTestSuite))
}
