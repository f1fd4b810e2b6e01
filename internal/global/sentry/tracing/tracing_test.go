package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "https://x.supabase.co/rest/v1/members",
		sanitizeURL("https://x.supabase.co/rest/v1/members?member_code=eq.ABC123"))
	assert.Equal(t, "unknown", sanitizeURL(""))
	assert.Equal(t, "unknown", sanitizeURL("://bad"))
}

func TestStartSpanWithoutTransaction(t *testing.T) {
	span := StartSpan(context.Background(), "export.rank", "2024-05")
	assert.Nil(t, span)
	Finish(span, nil)
}
