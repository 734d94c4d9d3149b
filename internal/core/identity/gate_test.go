package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_Authorize(t *testing.T) {
	gate := NewGate()

	assert.ErrorIs(t, gate.Authorize(Anonymous), ErrUnauthorized)
	assert.NoError(t, gate.Authorize(Principal("did:plc:alice")))
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// No principal attached
	assert.Equal(t, Anonymous, FromContext(ctx))
	assert.True(t, FromContext(ctx).IsAnonymous())

	// Principal attached by middleware
	ctx = WithPrincipal(ctx, Principal("did:plc:alice"))
	assert.Equal(t, Principal("did:plc:alice"), FromContext(ctx))
	assert.False(t, FromContext(ctx).IsAnonymous())
}
