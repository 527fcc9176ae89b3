package productrepo_test

import (
	"context"
	"testing"
	"time"

	"darkstore/internal/adapters/out/kv/productrepo"
	"darkstore/internal/adapters/out/memory/kvstore"
	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProduct(t *testing.T) *product.Product {
	t.Helper()

	aggregate, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:     "Whole Milk 1L",
		Price:    55,
		Category: "dairy",
		Stock:    40,
	}, time.Now().UTC())
	require.NoError(t, err)

	return aggregate
}

func TestRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewRepository(kvstore.NewStore())

	aggregate := createTestProduct(t)
	require.NoError(t, repo.Add(ctx, aggregate))

	restored, err := repo.Get(ctx, aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk 1L", restored.Name())
	assert.Equal(t, 55.0, restored.Price())
	assert.Equal(t, 40, restored.Stock())
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewRepository(kvstore.NewStore())

	aggregate := createTestProduct(t)
	require.NoError(t, repo.Add(ctx, aggregate))

	require.NoError(t, aggregate.Update(product.Details{
		Name:     "Whole Milk 1L",
		Price:    60,
		Category: "dairy",
		Stock:    35,
	}))
	require.NoError(t, repo.Update(ctx, aggregate))

	restored, err := repo.Get(ctx, aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, 60.0, restored.Price())
	assert.Equal(t, 35, restored.Stock())
}

func TestRepository_UpdateMissingProduct(t *testing.T) {
	repo := productrepo.NewRepository(kvstore.NewStore())

	err := repo.Update(context.Background(), createTestProduct(t))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewRepository(kvstore.NewStore())

	aggregate := createTestProduct(t)
	require.NoError(t, repo.Add(ctx, aggregate))
	require.NoError(t, repo.Delete(ctx, aggregate.ID()))

	_, err := repo.Get(ctx, aggregate.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, repo.Delete(ctx, aggregate.ID()), errs.ErrObjectNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewRepository(kvstore.NewStore())

	require.NoError(t, repo.Add(ctx, createTestProduct(t)))
	require.NoError(t, repo.Add(ctx, createTestProduct(t)))

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
