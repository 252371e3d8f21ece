// Package integration holds the clinic integration aggregate: the
// durable record binding a clinic to its Google refresh token and the
// automation resources provisioned for it.
package integration

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type ClinicIntegration struct {
	ID           uint
	ClinicID     string
	Email        string
	RefreshToken string
	CredentialID string
	WorkflowID   string
	Status       string
	LastSyncedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewClinicIntegration(clinicID, email, refreshToken string) (*ClinicIntegration, error) {
	if clinicID == "" {
		return nil, fmt.Errorf("clinic ID is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}

	now := time.Now()
	return &ClinicIntegration{
		ClinicID:     clinicID,
		Email:        email,
		RefreshToken: refreshToken,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AttachAutomation records the automation engine resources created for
// this clinic and stamps the sync time.
func (c *ClinicIntegration) AttachAutomation(credentialID, workflowID string) {
	now := time.Now()
	c.CredentialID = credentialID
	c.WorkflowID = workflowID
	c.LastSyncedAt = &now
	c.UpdatedAt = now
}

// IsProvisioned reports whether automation resources exist for this
// integration.
func (c *ClinicIntegration) IsProvisioned() bool {
	return c.CredentialID != "" && c.WorkflowID != ""
}

func (c *ClinicIntegration) Deactivate() {
	c.Status = StatusInactive
	c.UpdatedAt = time.Now()
}
