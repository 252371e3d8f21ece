package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

const (
	apiKeyHeader   = "X-N8N-API-KEY"
	requestTimeout = 30 * time.Second

	googleServerURL     = "https://www.googleapis.com"
	googleAuthURL       = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL      = "https://oauth2.googleapis.com/token"
	googleOAuthScope    = "https://www.googleapis.com/auth/calendar https://www.googleapis.com/auth/gmail.send"
	credentialGrantType = "authorizationCode"
)

// GoogleCredential is the material needed to mint an OAuth2 credential
// inside the automation engine.
type GoogleCredential struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Client talks to the automation engine's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

// NewClient creates a new automation engine client
func NewClient(baseURL, apiKey string, logger logger.Interface) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// CreateCredential registers a reusable Google OAuth2 credential for
// the clinic and returns the engine-assigned credential ID.
func (c *Client) CreateCredential(ctx context.Context, clinicID string, cred GoogleCredential) (string, error) {
	tokenData, err := json.Marshal(map[string]string{
		"refresh_token": cred.RefreshToken,
		"token_type":    "Bearer",
	})
	if err != nil {
		return "", fmt.Errorf("marshal token data: %w", err)
	}

	payload := map[string]any{
		"name": fmt.Sprintf("Google OAuth2 - Clinic %s", clinicID),
		"type": "oAuth2Api",
		"data": map[string]any{
			"grantType":      credentialGrantType,
			"serverUrl":      googleServerURL,
			"authUrl":        googleAuthURL,
			"accessTokenUrl": googleTokenURL,
			"clientId":       cred.ClientID,
			"clientSecret":   cred.ClientSecret,
			"scope":          googleOAuthScope,
			"authentication": "body",
			"oauthTokenData": string(tokenData),
		},
	}

	id, err := c.post(ctx, "/api/v1/credentials", payload)
	if err != nil {
		return "", err
	}

	c.logger.Infow("automation credential created",
		"clinic_id", clinicID,
		"credential_id", id,
	)
	return id, nil
}

// CreateWorkflow instantiates a workflow from the rendered template
// definition and returns the engine-assigned workflow ID.
func (c *Client) CreateWorkflow(ctx context.Context, clinicID string, definition map[string]any) (string, error) {
	definition["name"] = fmt.Sprintf("Clinic Workflow - %s", clinicID)
	definition["active"] = true

	id, err := c.post(ctx, "/api/v1/workflows", definition)
	if err != nil {
		return "", err
	}

	c.logger.Infow("automation workflow created",
		"clinic_id", clinicID,
		"workflow_id", id,
	)
	return id, nil
}

// DeleteWorkflow removes a workflow from the engine.
func (c *Client) DeleteWorkflow(ctx context.Context, workflowID string) error {
	return c.delete(ctx, "/api/v1/workflows/"+workflowID)
}

// DeleteCredential removes a credential from the engine.
func (c *Client) DeleteCredential(ctx context.Context, credentialID string) error {
	return c.delete(ctx, "/api/v1/credentials/"+credentialID)
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UnreachableError{BaseURL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil || result.ID == "" {
		return "", ErrMissingID
	}
	return result.ID, nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnreachableError{BaseURL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}
