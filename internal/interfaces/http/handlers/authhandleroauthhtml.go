package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowSuccess renders the page the user lands on after a completed
// login. A provisioning failure is shown as a warning; the login
// itself already succeeded.
func (h *AuthHandler) ShowSuccess(c *gin.Context) {
	clinicID := html.EscapeString(c.Query("clinicId"))
	mode := html.EscapeString(c.Query("mode"))

	warning := ""
	if c.Query("factoryError") != "" {
		warning = `
        <div class="warning">
            <strong>Automation setup incomplete.</strong>
            Your Google account is connected, but the scheduling
            automation could not be provisioned. Please contact support.
        </div>`
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Connection Successful</title>
    <style>
        body { font-family: -apple-system, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: #f5f7fa; }
        .card { background: white; padding: 40px; border-radius: 12px; box-shadow: 0 4px 12px rgba(0,0,0,0.08); max-width: 440px; text-align: center; }
        .icon { font-size: 48px; }
        h1 { font-size: 22px; color: #1a202c; }
        p { color: #4a5568; }
        .clinic { font-family: monospace; background: #edf2f7; padding: 4px 8px; border-radius: 4px; }
        .warning { margin-top: 16px; padding: 12px; background: #fffaf0; border: 1px solid #ed8936; border-radius: 8px; color: #7b341e; text-align: left; font-size: 14px; }
    </style>
</head>
<body>
    <div class="card">
        <div class="icon">&#x2705;</div>
        <h1>Google account connected</h1>
        <p>Clinic <span class="clinic">%s</span> is set up (mode: %s).</p>
        <p>You can close this window.</p>%s
    </div>
</body>
</html>`, clinicID, mode, warning)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

var errorReasons = map[string]string{
	reasonStateMismatch:       "The login attempt could not be verified. Please start again.",
	reasonMissingRefreshToken: "Google did not grant offline access. Please retry and approve all requested permissions.",
	reasonProviderDenied:      "Google reported that access was denied.",
	reasonOAuthFailed:         "Something went wrong while connecting your Google account.",
}

// ShowError renders the failure page. Known reason codes map to a
// human-readable explanation; anything else gets the generic one.
func (h *AuthHandler) ShowError(c *gin.Context) {
	reason := c.Query("message")
	message, ok := errorReasons[reason]
	if !ok {
		message = errorReasons[reasonOAuthFailed]
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Connection Failed</title>
    <style>
        body { font-family: -apple-system, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: #f5f7fa; }
        .card { background: white; padding: 40px; border-radius: 12px; box-shadow: 0 4px 12px rgba(0,0,0,0.08); max-width: 440px; text-align: center; }
        .icon { font-size: 48px; }
        h1 { font-size: 22px; color: #1a202c; }
        p { color: #4a5568; }
        a { color: #3182ce; }
    </style>
</head>
<body>
    <div class="card">
        <div class="icon">&#x274C;</div>
        <h1>Connection failed</h1>
        <p>%s</p>
        <p><a href="/auth/google">Try again</a></p>
    </div>
</body>
</html>`, html.EscapeString(message))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
