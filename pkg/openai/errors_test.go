package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDNSFailure(t *testing.T) {
	err := &net.DNSError{Err: "no such host", Name: "api.openai.com", IsNotFound: true}

	got := Classify(err)
	assert.Equal(t, "NETWORK_ERROR", got.Code)
	assert.Equal(t, 503, got.Status)
}

func TestClassifyConnectionRefused(t *testing.T) {
	err := fmt.Errorf("dial tcp 127.0.0.1:443: connect: connection refused")

	got := Classify(err)
	assert.Equal(t, "NETWORK_ERROR", got.Code)
	assert.Equal(t, 503, got.Status)
}

func TestClassifyTimeout(t *testing.T) {
	got := Classify(context.DeadlineExceeded)
	assert.Equal(t, "TIMEOUT_ERROR", got.Code)
	assert.Equal(t, 504, got.Status)
}

func TestClassifyAuth(t *testing.T) {
	err := &StatusError{StatusCode: 401, Body: `{"error":"invalid api key"}`}

	got := Classify(err)
	assert.Equal(t, "AUTH_ERROR", got.Code)
	assert.Equal(t, 502, got.Status)
}

func TestClassifyRateLimit(t *testing.T) {
	err := &StatusError{StatusCode: 429, Body: "slow down"}

	got := Classify(err)
	assert.Equal(t, "RATE_LIMIT", got.Code)
	assert.Equal(t, 429, got.Status)
}

func TestClassifyGeneric(t *testing.T) {
	err := &StatusError{StatusCode: 500, Body: "upstream exploded"}

	got := Classify(err)
	assert.Equal(t, "EXTERNAL_SERVICE_ERROR", got.Code)
	assert.Equal(t, 502, got.Status)
}

func TestClassifyKeepsDetailAndSafeMessage(t *testing.T) {
	raw := errors.New("secret internal detail")

	got := Classify(raw)
	assert.Equal(t, "secret internal detail", got.Detail)
	assert.NotContains(t, got.Message, "secret internal detail")
}

func TestStatusErrorWrapped(t *testing.T) {
	err := fmt.Errorf("calling chat: %w", &StatusError{StatusCode: 429, Body: "rate limited"})

	got := Classify(err)
	assert.Equal(t, "RATE_LIMIT", got.Code)
}
