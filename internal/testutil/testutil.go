// Package testutil holds fixtures and request helpers shared by handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"profrate/internal/platform/crypto"
	"profrate/internal/user"

	"github.com/golang-jwt/jwt/v5"
)

// TestUser is a regular account for testing.
var TestUser = user.User{
	ID:           "8f14e45f-ceea-4e67-a2f7-3c1b2c0d1e01",
	Username:     "testuser",
	Email:        "test@example.com",
	PasswordHash: "hashedpassword",
	Role:         user.RoleUser,
	CreatedAt:    time.Now(),
}

// TestAdminUser is an admin account for testing.
var TestAdminUser = user.User{
	ID:           "8f14e45f-ceea-4e67-a2f7-3c1b2c0d1e02",
	Username:     "adminuser",
	Email:        "admin@example.com",
	PasswordHash: "hashedpassword",
	Role:         user.RoleAdmin,
	CreatedAt:    time.Now(),
}

// GenerateTestToken generates a JWT token valid for an hour.
func GenerateTestToken(secret, userID, role string) string {
	tok, _ := crypto.GenerateToken(secret, userID, role, time.Hour)
	return tok.Value
}

// GenerateExpiredToken generates a JWT token that expired an hour ago.
func GenerateExpiredToken(secret, userID, role string) string {
	c := crypto.Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a request with body encoded as JSON.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	var r *http.Request
	switch b := body.(type) {
	case string:
		r = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
	default:
		raw, _ := json.Marshal(body)
		r = httptest.NewRequest(method, path, bytes.NewReader(raw))
	}
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates a request carrying a bearer token.
func NewRequestWithAuth(method, path string, body any, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is a decoded response envelope.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes the recorder's JSON body.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Data returns the envelope's data object, or nil.
func (r RecordResponse) Data() map[string]any {
	data, _ := r.Body["data"].(map[string]any)
	return data
}

// ErrorCode returns error.code from an error envelope.
func (r RecordResponse) ErrorCode() string {
	e, _ := r.Body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}
