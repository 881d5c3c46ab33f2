package inmem_test

import (
	"testing"

	"logistics/internal/adapters/out/inmem"
	"logistics/internal/core/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := t.Context()
	repo := inmem.NewRepository[model.Customer]()

	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1, Name: "Ana", Address: "Cluj"}))

	got, found, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ana", got.Name)
}

func TestRepository_GetMissingIsNotAnError(t *testing.T) {
	ctx := t.Context()
	repo := inmem.NewRepository[model.Customer]()

	_, found, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_CreateNeverOverwrites(t *testing.T) {
	ctx := t.Context()
	repo := inmem.NewRepository[model.Customer]()

	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1, Name: "Ana"}))
	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1, Name: "Maria"}))

	got, found, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ana", got.Name, "duplicate Create must keep the first record")
}

func TestRepository_Update(t *testing.T) {
	ctx := t.Context()
	repo := inmem.NewRepository[model.Customer]()

	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1, Name: "Ana"}))
	require.NoError(t, repo.Update(ctx, model.Customer{ID: 1, Name: "Ana-Maria"}))

	got, _, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana-Maria", got.Name)

	// Updating an unknown id is a no-op, not an error.
	require.NoError(t, repo.Update(ctx, model.Customer{ID: 99, Name: "Ghost"}))
	_, found, err := repo.Get(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_Delete(t *testing.T) {
	ctx := t.Context()
	repo := inmem.NewRepository[model.Customer]()

	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1}))
	require.NoError(t, repo.Delete(ctx, 1))

	_, found, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete(ctx, 1))
}

func TestRepository_ReadAllAndKeys(t *testing.T) {
	ctx := t.Context()
	repo := inmem.NewRepository[model.Package]()

	require.NoError(t, repo.Create(ctx, model.Package{ID: 3, Cost: 30}))
	require.NoError(t, repo.Create(ctx, model.Package{ID: 1, Cost: 10}))
	require.NoError(t, repo.Create(ctx, model.Package{ID: 2, Cost: 20}))

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, keys)
}
