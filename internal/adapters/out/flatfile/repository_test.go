package flatfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"logistics/internal/adapters/out/flatfile"
	"logistics/internal/core/domain/model"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerRepo(t *testing.T) (*flatfile.Repository[model.Customer], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.txt")
	return flatfile.NewRepository(path, flatfile.CustomerCodec()), path
}

func TestRepository_MissingFileReadsAsEmpty(t *testing.T) {
	ctx := t.Context()
	repo, _ := newCustomerRepo(t)

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRepository_CreateRewritesWholeFile(t *testing.T) {
	ctx := t.Context()
	repo, path := newCustomerRepo(t)

	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1, Name: "Ana", Address: "Cluj", Phone: "0712", Email: "ana@mail.com"}))
	require.NoError(t, repo.Create(ctx, model.Customer{ID: 2, Name: "Ion", Address: "Sibiu", Phone: "0734", Email: "ion@mail.com"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,Ana,Cluj,0712,ana@mail.com\n2,Ion,Sibiu,0734,ion@mail.com\n", string(data))
}

func TestRepository_DuplicateCreateIsStorageError(t *testing.T) {
	ctx := t.Context()
	repo, _ := newCustomerRepo(t)

	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1, Name: "Ana"}))
	err := repo.Create(ctx, model.Customer{ID: 1, Name: "Maria"})
	require.ErrorIs(t, err, errs.ErrStorage)

	all, readErr := repo.ReadAll(ctx)
	require.NoError(t, readErr)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana", all[0].Name)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	ctx := t.Context()
	repo, _ := newCustomerRepo(t)

	require.NoError(t, repo.Create(ctx, model.Customer{ID: 1, Name: "Ana"}))
	require.NoError(t, repo.Create(ctx, model.Customer{ID: 2, Name: "Ion"}))

	require.NoError(t, repo.Update(ctx, model.Customer{ID: 2, Name: "Ionut"}))
	got, found, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ionut", got.Name)

	// Unknown id: update and delete are no-ops.
	require.NoError(t, repo.Update(ctx, model.Customer{ID: 9, Name: "Ghost"}))
	require.NoError(t, repo.Delete(ctx, 9))

	require.NoError(t, repo.Delete(ctx, 1))
	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, keys)
}

func TestRepository_PersistsAcrossInstances(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "deposits.txt")

	first := flatfile.NewRepository(path, flatfile.DepositCodec())
	require.NoError(t, first.Create(ctx, model.Deposit{ID: 1, StoreID: 3, Address: "Str. Garii 4", Status: "full"}))

	second := flatfile.NewRepository(path, flatfile.DepositCodec())
	got, found, err := second.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, got.StoreID)
	assert.Equal(t, "full", got.Status)
}

func TestRepository_CorruptLineIsStorageError(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "customers.txt")
	require.NoError(t, os.WriteFile(path, []byte("not-a-record\n"), 0o644))

	repo := flatfile.NewRepository(path, flatfile.CustomerCodec())
	_, err := repo.ReadAll(ctx)
	require.ErrorIs(t, err, errs.ErrStorage)
}

func TestCodecs_RoundTrip(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		placed := time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC)
		due := placed.Add(48 * time.Hour)
		in := model.Order{
			ID: 7, CustomerID: 2, DeliveryID: 4,
			PlacedAt: placed, DeliveryAt: due,
			TotalCost: 150.5, Status: "to be shipped", Location: "Cluj",
		}

		codec := flatfile.OrderCodec()
		out, err := codec.Decode(codec.Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in.ID, out.ID)
		assert.Equal(t, in.TotalCost, out.TotalCost)
		assert.Equal(t, in.Status, out.Status)
		assert.True(t, in.PlacedAt.Equal(out.PlacedAt))
		assert.True(t, in.DeliveryAt.Equal(out.DeliveryAt))
	})

	t.Run("personal vehicle", func(t *testing.T) {
		in := model.PersonalVehicle{ID: 3, DeliveryPersonID: 9, ExtraFee: 12.5, Capacity: 900, Kind: model.Naval}

		codec := flatfile.PersonalVehicleCodec()
		out, err := codec.Decode(codec.Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("delivery person", func(t *testing.T) {
		in := model.DeliveryPerson{ID: 5, Name: "Vlad", Phone: "0744", Verified: true, License: "B", VehicleID: 3}

		codec := flatfile.DeliveryPersonCodec()
		out, err := codec.Decode(codec.Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
