package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStoreFlushLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.db")
	ctx := context.Background()

	s, err := OpenBolt(path)
	require.NoError(t, err)

	c, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, c)

	require.NoError(t, s.Flush(ctx, sampleCollection()))
	require.NoError(t, s.Close())

	s2, err := OpenBolt(path)
	require.NoError(t, err)
	defer s2.Close()

	c, err = s2.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, c, "r1")
	assert.Equal(t, "apple-pie", c["r1"].Slug)
}

func TestBoltStoreFlushReplacesWholeCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.db")
	ctx := context.Background()

	s, err := OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Flush(ctx, sampleCollection()))
	require.NoError(t, s.Flush(ctx, Collection{}))

	c, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, c)
}
