// Package automation integrates with an n8n-compatible automation
// engine: credential and workflow provisioning over its REST API,
// plus loading of the workflow template the engine instances are
// stamped from.
package automation

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

// credentialPlaceholder is the marker inside the template that gets
// replaced with the real credential ID for each clinic.
const credentialPlaceholder = "CREDENTIAL_ID_PLACEHOLDER"

// WorkflowTemplateLoader loads and validates the workflow template
// file used to stamp out per-clinic workflows.
type WorkflowTemplateLoader struct {
	path   string
	logger logger.Interface
	raw    string
}

// NewWorkflowTemplateLoader creates a new template loader
func NewWorkflowTemplateLoader(path string, logger logger.Interface) *WorkflowTemplateLoader {
	return &WorkflowTemplateLoader{
		path:   path,
		logger: logger,
	}
}

// Load reads the template from disk and verifies it parses as JSON.
// Provisioning cannot work without a valid template, so failures here
// are hard errors rather than fallbacks.
func (l *WorkflowTemplateLoader) Load() error {
	content, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, l.path)
		}
		return fmt.Errorf("failed to read workflow template %s: %w", l.path, err)
	}

	if !json.Valid(content) {
		return fmt.Errorf("%w: %s", ErrTemplateInvalid, l.path)
	}

	l.raw = string(content)
	l.logger.Infow("workflow template loaded",
		"path", l.path,
		"size", len(content),
	)
	return nil
}

// Render substitutes the credential placeholder and returns the
// workflow definition as a generic JSON object.
func (l *WorkflowTemplateLoader) Render(credentialID string) (map[string]any, error) {
	if l.raw == "" {
		return nil, fmt.Errorf("workflow template not loaded")
	}

	rendered := strings.ReplaceAll(l.raw, credentialPlaceholder, credentialID)

	var definition map[string]any
	if err := json.Unmarshal([]byte(rendered), &definition); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}
	return definition, nil
}
