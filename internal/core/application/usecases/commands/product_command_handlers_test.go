package commands_test

import (
	"testing"
	"time"

	"darkstore/internal/core/application/usecases/commands"
	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/core/domain/model/product"
	"darkstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("success", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once()

		handler := commands.NewCreateProductCommandHandler(products)
		cmd, err := commands.NewCreateProductCommand(product.Details{
			Name: "Bananas 6pc", Price: 45, Category: "fruit", Stock: 20,
		})
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "Bananas 6pc", created.Name())

		products.AssertExpectations(t)
	})

	t.Run("invalid_details", func(t *testing.T) {
		products := new(MockProductRepository)

		handler := commands.NewCreateProductCommandHandler(products)
		cmd, err := commands.NewCreateProductCommand(product.Details{Name: "", Price: 45})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		products.AssertNotCalled(t, "Add")
	})
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	existing, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name: "Bananas 6pc", Price: 45, Category: "fruit", Stock: 20,
	}, time.Now().UTC())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
		products.On("Update", ctx, existing).Return(nil).Once()

		handler := commands.NewUpdateProductCommandHandler(products)
		cmd, err := commands.NewUpdateProductCommand(existing.ID(), product.Details{
			Name: "Bananas 6pc", Price: 50, Category: "fruit", Stock: 18,
		})
		require.NoError(t, err)

		updated, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 50.0, updated.Price())

		products.AssertExpectations(t)
	})

	t.Run("missing_product", func(t *testing.T) {
		missingID := kernel.NewUUID()
		products := new(MockProductRepository)
		products.On("Get", ctx, missingID).
			Return(nil, errs.NewObjectNotFoundError("product", missingID.String())).Once()

		handler := commands.NewUpdateProductCommandHandler(products)
		cmd, err := commands.NewUpdateProductCommand(missingID, product.Details{Name: "x", Price: 1})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	products := new(MockProductRepository)
	products.On("Delete", ctx, productID).Return(nil).Once()

	handler := commands.NewDeleteProductCommandHandler(products)
	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	products.AssertExpectations(t)
}
