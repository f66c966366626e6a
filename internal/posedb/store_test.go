// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package posedb

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gt-extractor/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.StoreConfig{Dir: filepath.Join(t.TempDir(), "index")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoad(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	ds := types.Dataset{
		{10, 20, 30.125, -40},
		{0.1, 1e-9, 123456789.5},
		{},
	}
	require.NoError(t, store.Save(ctx, "traj21", "traj21.meta", types.DefaultLoadConfig(), ds))

	got, err := store.Load(ctx, "traj21")
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestSave_ReplacesExisting(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	cfg := types.DefaultLoadConfig()

	require.NoError(t, store.Save(ctx, "traj", "a.meta", cfg, types.Dataset{{1}, {2}, {3}}))
	require.NoError(t, store.Save(ctx, "traj", "b.meta", cfg, types.Dataset{{9}}))

	got, err := store.Load(ctx, "traj")
	require.NoError(t, err)
	assert.Equal(t, types.Dataset{{9}}, got)

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "b.meta", infos[0].Source)
	assert.Equal(t, 1, infos[0].Records)
}

func TestSave_NonFinite(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "odd", "odd.meta", types.DefaultLoadConfig(),
		types.Dataset{{math.NaN(), math.Inf(1), math.Inf(-1), math.Copysign(0, -1)}}))

	got, err := store.Load(ctx, "odd")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, math.IsNaN(got[0][0]))
	assert.True(t, math.IsInf(got[0][1], 1))
	assert.True(t, math.IsInf(got[0][2], -1))
	assert.True(t, math.Signbit(got[0][3]))
}

func TestSave_EmptyName(t *testing.T) {
	store := testStore(t)
	err := store.Save(context.Background(), "", "x", types.DefaultLoadConfig(), nil)
	assert.Error(t, err)
}

func TestLoad_NotFound(t *testing.T) {
	store := testStore(t)
	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	cfg := types.LoadConfig{StartIdx: 1, EndIdx: 4, Delimiter: ","}

	require.NoError(t, store.Save(ctx, "b", "b.csv", cfg, types.Dataset{{1}}))
	require.NoError(t, store.Save(ctx, "a", "a.csv", cfg, types.Dataset{{1}, {2}}))

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, 2, infos[0].Records)
	assert.Equal(t, 1, infos[0].StartIdx)
	assert.Equal(t, 4, infos[0].EndIdx)
	assert.Equal(t, ",", infos[0].Delimiter)
	assert.NotEmpty(t, infos[0].CreatedAt)
	assert.Equal(t, "b", infos[1].Name)
}

func TestDelete(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "traj", "t.meta", types.DefaultLoadConfig(), types.Dataset{{1, 2}}))
	require.NoError(t, store.Delete(ctx, "traj"))

	_, err := store.Load(ctx, "traj")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "traj"), ErrNotFound)
}
