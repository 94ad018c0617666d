package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lead-rotation-backend/internal/config"
	apperrors "lead-rotation-backend/internal/errors"
)

// Lead represents a lead record in the external CRM. Fields beyond owner and
// userAccess are passthrough display data.
type Lead struct {
	ID          string   `json:"id"`
	Firstname   string   `json:"firstname"`
	Lastname    string   `json:"lastname"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	WhatsApp    string   `json:"whatsapp"`
	Company     string   `json:"company"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	CreateDate  string   `json:"createDate"`
	LastActive  string   `json:"lastActive"`
	Points      int      `json:"points"`
	StarScore   int      `json:"star_score"`
	CreatedBy   string   `json:"createdBy"`
	UpdatedBy   string   `json:"updatedBy"`
	UpdatedDate string   `json:"updatedDate"`
	Owner       string   `json:"owner"`
	UserAccess  []string `json:"userAccess"`
}

// leadEnvelope mirrors the CRM response shape: {"data": {"lead": {...}}}
type leadEnvelope struct {
	Data struct {
		Lead *Lead `json:"lead"`
	} `json:"data"`
}

// leadUpdateRequest is the partial update accepted by the CRM write endpoint.
// Owner and access list travel in a single request.
type leadUpdateRequest struct {
	UserAccess []string `json:"userAccess"`
	Owner      string   `json:"owner"`
}

// CRMService talks to the external lead CRM. Credentials are opaque strings
// injected from configuration; every request carries them as query parameters
// the way the CRM expects.
type CRMService struct {
	baseURL    string
	apiToken   string
	accountID  string
	httpClient *http.Client
}

// NewCRMService creates a new CRM client from configuration
func NewCRMService(cfg *config.Config) *CRMService {
	base := strings.TrimRight(cfg.CRMBaseURL, "/")
	return &CRMService{
		baseURL:   base,
		apiToken:  cfg.CRMAPIToken,
		accountID: cfg.CRMAccountID,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.CRMTimeoutSec) * time.Second,
		},
	}
}

func (s *CRMService) leadURL(leadID string, extra url.Values) string {
	params := url.Values{}
	params.Set("apitoken", s.apiToken)
	params.Set("i", s.accountID)
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	return fmt.Sprintf("%s/leads/%s?%s", s.baseURL, url.PathEscape(leadID), params.Encode())
}

// GetLead fetches the current state of a lead by id
func (s *CRMService) GetLead(ctx context.Context, leadID string) (*Lead, error) {
	reqURL := s.leadURL(leadID, url.Values{"allFields": {"1"}})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead fetch request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lead fetch request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrLeadNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("lead fetch failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var envelope leadEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode lead response: %w", err)
	}
	if envelope.Data.Lead == nil {
		return nil, apperrors.ErrLeadNotFound
	}
	return envelope.Data.Lead, nil
}

// UpdateLead issues the single combined write carrying the new access list
// and owner for a lead.
func (s *CRMService) UpdateLead(ctx context.Context, leadID string, userAccess []string, owner string) error {
	payload, err := json.Marshal(leadUpdateRequest{
		UserAccess: userAccess,
		Owner:      owner,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal lead update: %w", err)
	}

	reqURL := s.leadURL(leadID, nil)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create lead update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("lead update request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("lead update failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
