package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestGenerateIDs(t *testing.T) {
	correlationID := GenerateCorrelationID()
	if correlationID == "" {
		t.Error("Expected non-empty correlation ID")
	}

	requestID := GenerateRequestID()
	if !strings.HasPrefix(requestID, "req_") {
		t.Errorf("Expected request ID to start with req_, got %s", requestID)
	}

	if correlationID == requestID {
		t.Error("Correlation ID and request ID should be different")
	}
}

func TestLoggerFromContextCarriesIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(&bytes.Buffer{})

	ctx := WithCorrelationID(context.Background(), "corr-1")
	ctx = WithRequestID(ctx, "req_1")
	ctx = WithClientID(ctx, "client-1")

	LogInfo(ctx, "hello", Fields{"video_id": "dQw4w9WgXcQ"})

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}

	expected := map[string]string{
		"message":        "hello",
		"correlation_id": "corr-1",
		"request_id":     "req_1",
		"client_id":      "client-1",
		"video_id":       "dQw4w9WgXcQ",
	}
	for key, want := range expected {
		if got, _ := line[key].(string); got != want {
			t.Errorf("Expected %s=%q, got %q", key, want, got)
		}
	}
}

func TestAsAppError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantStatus int
	}{
		{
			name:       "Direct app error",
			err:        NewConfigurationError("missing key"),
			wantCode:   ErrorCodeConfiguration,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Wrapped app error",
			err:        fmt.Errorf("resolve: %w", NewNoSuitableFormatError("empty")),
			wantCode:   ErrorCodeNoSuitableFormat,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Plain error",
			err:        errors.New("boom"),
			wantCode:   ErrorCodeInternalError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := AsAppError(tc.err)
			if appErr.Code != tc.wantCode {
				t.Errorf("Expected code %s, got %s", tc.wantCode, appErr.Code)
			}
			if appErr.StatusCode != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, appErr.StatusCode)
			}
		})
	}
}

func TestUpstreamProtocolErrorMessage(t *testing.T) {
	withMessage := NewUpstreamProtocolError("Video download service", http.StatusNotFound, "Video not found")
	if !strings.Contains(withMessage.Message, "404") || !strings.Contains(withMessage.Message, "Video not found") {
		t.Errorf("Expected status and upstream message in %q", withMessage.Message)
	}
	if withMessage.Details["upstream_status"] != http.StatusNotFound {
		t.Errorf("Expected upstream_status detail 404, got %v", withMessage.Details["upstream_status"])
	}

	generic := NewUpstreamProtocolError("Video download service", http.StatusInternalServerError, "")
	if !strings.Contains(generic.Message, "500 Internal Server Error") {
		t.Errorf("Expected generic status message, got %q", generic.Message)
	}
	if _, ok := generic.Details["upstream_message"]; ok {
		t.Error("Expected no upstream_message detail when upstream sent none")
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamTransportError("download service", cause)
	if !errors.Is(err, cause) {
		t.Error("Expected transport error to unwrap to its cause")
	}
	if !IsCode(err, ErrorCodeUpstreamTransport) {
		t.Error("Expected IsCode to match UPSTREAM_TRANSPORT_ERROR")
	}
}
