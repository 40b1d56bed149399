package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext_ReadsTypedKeys(t *testing.T) {
	log := New("error")
	ctx := context.WithValue(context.Background(), ContextKeyRequestID, "req-7")
	ctx = context.WithValue(ctx, ContextKeyUserID, "u-1")

	entry := log.WithContext(ctx)

	assert.Equal(t, "req-7", entry.Data["request_id"])
	assert.Equal(t, "u-1", entry.Data["user_id"])
}

func TestWithContext_MissingValues(t *testing.T) {
	log := New("error")

	entry := log.WithContext(context.Background())

	assert.NotContains(t, entry.Data, "request_id")
	assert.NotContains(t, entry.Data, "user_id")
}

func TestWithContext_StringKeyDoesNotMatch(t *testing.T) {
	log := New("error")
	// Values stored under a plain string key are invisible; callers
	// must use the exported typed keys.
	ctx := context.WithValue(context.Background(), interface{}("request_id"), "req-7")

	entry := log.WithContext(ctx)

	assert.NotContains(t, entry.Data, "request_id")
}
