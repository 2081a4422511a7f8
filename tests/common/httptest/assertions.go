//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// ConflictBody is the decoded 409 envelope.
type ConflictBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Reason           string     `json:"reason"`
		LockedUntil      *time.Time `json:"lockedUntil"`
		AlternativeSlots []struct {
			Start             string `json:"start"`
			End               string `json:"end"`
			RemainingCapacity int    `json:"remainingCapacity"`
		} `json:"alternativeSlots"`
	} `json:"detail"`
}

func AssertConflictResponse(t *testing.T, w *httptest.ResponseRecorder, expectedReason string) ConflictBody {
	t.Helper()

	var body ConflictBody
	if !assert.Equal(t, http.StatusConflict, w.Code, "Response: %s", w.Body.String()) {
		return body
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode conflict JSON: %s", w.Body.String())
	assert.Equal(t, expectedReason, body.Detail.Reason)
	return body
}
