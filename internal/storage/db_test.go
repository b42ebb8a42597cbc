package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectReturnsSharedPool(t *testing.T) {
	// pgxpool.New only parses the config; no connection is dialed here
	first, err := Connect(context.Background(), "postgres://docqa:pw@localhost:5432/docqa")
	require.NoError(t, err)
	require.NotNil(t, first)

	// a second call shares the handle and ignores its url
	second, err := Connect(context.Background(), "postgres://other:pw@elsewhere:5432/other")
	require.NoError(t, err)
	assert.Same(t, first, second)
}
