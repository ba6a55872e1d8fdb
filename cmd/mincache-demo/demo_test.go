package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(Opts{Key: "key1", Value: "my value", TTL: 60}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `get key1: "my value"`, lines[0])
	assert.Equal(t, `get key1:ttl: "my value"`, lines[1])
	assert.Equal(t, "entries=2 hits=2 misses=0 expired=0 used=64B orphaned=0B", lines[2])
}

func TestRunWaitsPastTTL(t *testing.T) {
	var out bytes.Buffer
	err := run(Opts{Key: "中文键", Value: "值123", TTL: 0, Wait: 5 * time.Millisecond, Strict: true}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `get 中文键: "值123"`, lines[0])
	assert.Equal(t, "sleep 5ms", lines[2])
	assert.Equal(t, `get 中文键: "值123"`, lines[3])
	assert.Equal(t, "get 中文键:ttl: <none>", lines[4])
	// the ttl copy may already be gone on the first read
	assert.Regexp(t, `expired=[12] `, lines[5])
}
