package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWiresServer(t *testing.T) {
	srv, _ := newTestServer(t)

	require.NotNil(t, srv.srv)
	require.NotNil(t, srv.HTTPHandler())
}
