package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lead-rotation-backend/internal/database/models"
	apperrors "lead-rotation-backend/internal/errors"
	"lead-rotation-backend/internal/logger"
	"lead-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const syncAction = "ownership_sync"

// SyncService propagates the agent selected by a rotation as the owner and
// access grantee of a lead in the external CRM. Every attempt, successful or
// not, appends one webhook log row. Synchronization failures are converted
// into logged failure records and never surfaced as faults: the rotation that
// preceded the sync is already committed and must stay visible.
type SyncService struct {
	agentRepo      repository.AgentRepositoryInterface
	webhookLogRepo repository.WebhookLogRepositoryInterface
	crm            CRMClientInterface
	log            *logger.Logger
}

// NewSyncService creates a new ownership synchronizer
func NewSyncService(
	agentRepo repository.AgentRepositoryInterface,
	webhookLogRepo repository.WebhookLogRepositoryInterface,
	crm CRMClientInterface,
) *SyncService {
	return &SyncService{
		agentRepo:      agentRepo,
		webhookLogRepo: webhookLogRepo,
		crm:            crm,
		log:            logger.WithComponent("sync"),
	}
}

// SyncResult reports one synchronization attempt. Lead is nil when the lead
// could not be resolved; Status tells the caller whether the CRM now reflects
// the new ownership, so partial success (rotation done, sync failed) is
// explicit.
type SyncResult struct {
	QueueID     uuid.UUID            `json:"queue_id"`
	AgentID     uuid.UUID            `json:"agent_id"`
	LeadID      string               `json:"lead_id"`
	Lead        *Lead                `json:"lead"`
	Status      models.WebhookStatus `json:"status"`
	ErrorDetail string               `json:"error_detail,omitempty"`
}

// WebhookLogResponse represents a logged synchronization attempt joined with
// agent display data
type WebhookLogResponse struct {
	ID               uuid.UUID            `json:"id"`
	QueueID          uuid.UUID            `json:"queue_id"`
	AgentID          uuid.UUID            `json:"agent_id"`
	AgentName        string               `json:"agent_name"`
	AgentEmail       string               `json:"agent_email"`
	LeadID           string               `json:"lead_id"`
	Action           string               `json:"action"`
	SnapshotBefore   json.RawMessage      `json:"snapshot_before,omitempty"`
	SnapshotAfter    json.RawMessage      `json:"snapshot_after,omitempty"`
	AccessListBefore json.RawMessage      `json:"access_list_before,omitempty"`
	AccessListAfter  json.RawMessage      `json:"access_list_after,omitempty"`
	OwnerBefore      string               `json:"owner_before"`
	OwnerAfter       string               `json:"owner_after"`
	Status           models.WebhookStatus `json:"status"`
	ErrorDetail      string               `json:"error_detail,omitempty"`
	CreatedAt        string               `json:"created_at"`
}

type ownershipSnapshot struct {
	UserAccess []string `json:"userAccess"`
	Owner      string   `json:"owner"`
}

func marshalSnapshot(access []string, owner string) json.RawMessage {
	raw, err := json.Marshal(ownershipSnapshot{UserAccess: access, Owner: owner})
	if err != nil {
		return nil
	}
	return raw
}

func marshalAccess(access []string) json.RawMessage {
	raw, err := json.Marshal(access)
	if err != nil {
		return nil
	}
	return raw
}

// Sync resolves the target lead (the hint when supplied, else the agent's own
// id), fetches its current state, unions the agent into the access list,
// overwrites the owner, and issues one combined update. One webhook log row
// is written per attempt. The returned error is non-nil only for local
// storage or lookup failures, never for CRM unavailability.
func (s *SyncService) Sync(ctx context.Context, queueID, agentID uuid.UUID, leadIDHint string) (*SyncResult, error) {
	agent, err := s.agentRepo.GetByID(agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	// Convention inherited from the original system: without an explicit lead
	// the agent's own id is used as the lookup key.
	leadID := leadIDHint
	if leadID == "" {
		leadID = agent.ID.String()
	}

	result := &SyncResult{
		QueueID: queueID,
		AgentID: agent.ID,
		LeadID:  leadID,
	}

	lead, err := s.crm.GetLead(ctx, leadID)
	if err != nil {
		result.Status = models.WebhookStatusFailure
		result.ErrorDetail = err.Error()
		s.logAttempt(&models.WebhookLog{
			QueueID:     queueID,
			AgentID:     agent.ID,
			LeadID:      leadID,
			Action:      syncAction,
			Status:      models.WebhookStatusFailure,
			ErrorDetail: err.Error(),
		})
		return result, nil
	}

	accessBefore := lead.UserAccess
	ownerBefore := lead.Owner
	vendorID := agent.ID.String()

	// Union semantics: appending only when absent keeps repeated syncs
	// idempotent.
	accessAfter := make([]string, len(accessBefore), len(accessBefore)+1)
	copy(accessAfter, accessBefore)
	present := false
	for _, id := range accessBefore {
		if id == vendorID {
			present = true
			break
		}
	}
	if !present {
		accessAfter = append(accessAfter, vendorID)
	}

	entry := &models.WebhookLog{
		QueueID:          queueID,
		AgentID:          agent.ID,
		LeadID:           leadID,
		Action:           syncAction,
		SnapshotBefore:   marshalSnapshot(accessBefore, ownerBefore),
		AccessListBefore: marshalAccess(accessBefore),
		OwnerBefore:      ownerBefore,
	}

	if err := s.crm.UpdateLead(ctx, leadID, accessAfter, vendorID); err != nil {
		entry.Status = models.WebhookStatusFailure
		entry.ErrorDetail = err.Error()
		s.logAttempt(entry)

		result.Lead = lead
		result.Status = models.WebhookStatusFailure
		result.ErrorDetail = err.Error()
		return result, nil
	}

	lead.UserAccess = accessAfter
	lead.Owner = vendorID

	entry.Status = models.WebhookStatusSuccess
	entry.SnapshotAfter = marshalSnapshot(accessAfter, vendorID)
	entry.AccessListAfter = marshalAccess(accessAfter)
	entry.OwnerAfter = vendorID
	s.logAttempt(entry)

	result.Lead = lead
	result.Status = models.WebhookStatusSuccess
	return result, nil
}

// Resend replays a previously logged attempt as a fresh synchronization for
// the same queue, agent and lead, producing its own log row.
func (s *SyncService) Resend(ctx context.Context, webhookLogID uuid.UUID) (*SyncResult, error) {
	entry, err := s.webhookLogRepo.GetByID(webhookLogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWebhookLogNotFound
		}
		return nil, fmt.Errorf("failed to get webhook log entry: %w", err)
	}
	return s.Sync(ctx, entry.QueueID, entry.AgentID, entry.LeadID)
}

// ListLogs returns the most recent synchronization attempts, newest first,
// optionally filtered to one queue.
func (s *SyncService) ListLogs(queueID *uuid.UUID, limit int) ([]WebhookLogResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	entries, err := s.webhookLogRepo.GetRecent(queueID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook logs: %w", err)
	}

	responses := make([]WebhookLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, WebhookLogResponse{
			ID:               entry.ID,
			QueueID:          entry.QueueID,
			AgentID:          entry.AgentID,
			AgentName:        entry.Agent.Name,
			AgentEmail:       entry.Agent.Email,
			LeadID:           entry.LeadID,
			Action:           entry.Action,
			SnapshotBefore:   entry.SnapshotBefore,
			SnapshotAfter:    entry.SnapshotAfter,
			AccessListBefore: entry.AccessListBefore,
			AccessListAfter:  entry.AccessListAfter,
			OwnerBefore:      entry.OwnerBefore,
			OwnerAfter:       entry.OwnerAfter,
			Status:           entry.Status,
			ErrorDetail:      entry.ErrorDetail,
			CreatedAt:        entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return responses, nil
}

// logAttempt appends the attempt record. A storage failure here must not mask
// the synchronization outcome, so it is logged and swallowed.
func (s *SyncService) logAttempt(entry *models.WebhookLog) {
	if err := s.webhookLogRepo.Create(entry); err != nil {
		s.log.WithError(err).WithFields(map[string]interface{}{
			"queue_id": entry.QueueID,
			"agent_id": entry.AgentID,
			"lead_id":  entry.LeadID,
		}).Error("failed to record webhook log entry")
	}
}
