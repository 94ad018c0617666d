package repository

import (
	"fmt"
	"time"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterRepository handles database operations for roster entries. The
// mutating operations each run as one transaction holding FOR UPDATE locks on
// the queue's roster rows, so concurrent rotations on the same queue serialize
// and the contiguity invariant (positions are exactly 1..N) holds at every
// observable instant. The matching audit row is written inside the same
// transaction.
type RosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// GetActiveByQueue retrieves the non-removed roster entries of a queue ordered
// by position, with agent data preloaded.
func (r *RosterRepository) GetActiveByQueue(queueID uuid.UUID) ([]models.RosterEntry, error) {
	var entries []models.RosterEntry
	err := r.db.Preload("Agent").
		Where("queue_id = ? AND removed = ?", queueID, false).
		Order("position ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetHead retrieves the roster entry at position 1 among non-removed entries
func (r *RosterRepository) GetHead(queueID uuid.UUID) (*models.RosterEntry, error) {
	var entry models.RosterEntry
	err := r.db.Preload("Agent").
		Where("queue_id = ? AND removed = ? AND position = ?", queueID, false, 1).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// lockActiveEntries loads a queue's non-removed entries ordered by position,
// holding row locks until the surrounding transaction commits.
func lockActiveEntries(tx *gorm.DB, queueID uuid.UUID) ([]models.RosterEntry, error) {
	var entries []models.RosterEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("queue_id = ? AND removed = ?", queueID, false).
		Order("position ASC").
		Find(&entries).Error
	return entries, err
}

// AdvanceHead completes the head's turn: the entry at position 1 moves to the
// back, every other entry is promoted by one, and one audit row is appended.
// Returns the advanced entry and its new position. Returns
// gorm.ErrRecordNotFound when the queue has no non-removed entries.
func (r *RosterRepository) AdvanceHead(queueID uuid.UUID) (*models.RosterEntry, int, error) {
	var head models.RosterEntry
	var newPosition int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		entries, err := lockActiveEntries(tx, queueID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return gorm.ErrRecordNotFound
		}

		head = entries[0]
		if head.Position != 1 {
			return fmt.Errorf("roster for queue %s violates position invariant: head at %d", queueID, head.Position)
		}

		// The head lands on the last contiguous slot once everyone else has
		// been promoted. With a single member this is a no-op at position 1.
		newPosition = len(entries)

		if err := tx.Model(&models.RosterEntry{}).
			Where("queue_id = ? AND removed = ? AND position > ?", queueID, false, 1).
			Update("position", gorm.Expr("position - 1")).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.RosterEntry{}).
			Where("id = ?", head.ID).
			Update("position", newPosition).Error; err != nil {
			return err
		}

		audit := &models.RotationLog{
			QueueID:        queueID,
			AgentID:        head.AgentID,
			Action:         models.RotationActionAdvanced,
			PositionBefore: 1,
			PositionAfter:  newPosition,
		}
		return tx.Create(audit).Error
	})
	if err != nil {
		return nil, 0, err
	}

	var out models.RosterEntry
	if err := r.db.Preload("Agent").First(&out, "id = ?", head.ID).Error; err != nil {
		return nil, 0, err
	}
	return &out, newPosition, nil
}

// AddMember adds an agent to a queue at the tail position. A previously
// removed entry for the pair is reactivated instead of duplicated. Returns
// apperrors.ErrAlreadyMember when a non-removed entry already exists.
func (r *RosterRepository) AddMember(queueID, agentID uuid.UUID) (*models.RosterEntry, error) {
	var entry models.RosterEntry

	err := r.db.Transaction(func(tx *gorm.DB) error {
		active, err := lockActiveEntries(tx, queueID)
		if err != nil {
			return err
		}
		tail := len(active) + 1

		var existing models.RosterEntry
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("queue_id = ? AND agent_id = ?", queueID, agentID).
			First(&existing).Error
		switch {
		case err == nil && !existing.Removed:
			return apperrors.ErrAlreadyMember
		case err == nil:
			// Reactivate the removed entry at the tail
			updates := map[string]interface{}{
				"removed":    false,
				"removed_at": nil,
				"position":   tail,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			existing.Removed = false
			existing.RemovedAt = nil
			existing.Position = tail
			entry = existing
			return nil
		case err == gorm.ErrRecordNotFound:
			entry = models.RosterEntry{
				QueueID:  queueID,
				AgentID:  agentID,
				Position: tail,
			}
			return tx.Create(&entry).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveMember soft-deletes an agent's entry and immediately renumbers the
// remaining entries so positions stay contiguous, appending one audit row.
// Returns apperrors.ErrNotMember when no non-removed entry exists.
func (r *RosterRepository) RemoveMember(queueID, agentID uuid.UUID) (*models.RosterEntry, error) {
	var entry models.RosterEntry

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockActiveEntries(tx, queueID); err != nil {
			return err
		}

		err := tx.Where("queue_id = ? AND agent_id = ? AND removed = ?", queueID, agentID, false).
			First(&entry).Error
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotMember
		}
		if err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&entry).Updates(map[string]interface{}{
			"removed":    true,
			"removed_at": now,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.RosterEntry{}).
			Where("queue_id = ? AND removed = ? AND position > ?", queueID, false, entry.Position).
			Update("position", gorm.Expr("position - 1")).Error; err != nil {
			return err
		}

		entry.Removed = true
		entry.RemovedAt = &now

		audit := &models.RotationLog{
			QueueID:        queueID,
			AgentID:        agentID,
			Action:         models.RotationActionRemoved,
			PositionBefore: entry.Position,
			PositionAfter:  0,
		}
		return tx.Create(audit).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
