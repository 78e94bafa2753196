package impl

import (
	"context"
	"io"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx wires the transaction manager so the unit of work runs against
// the given factory and its error propagates unchanged.
func expectTx(txManager *mockRepo.MockTransactionManager, ctx context.Context, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func testBuyer() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "buyer@example.com",
		FirstName: "Test",
		LastName:  "Buyer",
		Role:      entity.RoleBuyer,
		IsActive:  true,
	}
}

func testSeller() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "seller@example.com",
		FirstName: "Test",
		LastName:  "Seller",
		Role:      entity.RoleSeller,
		IsActive:  true,
	}
}

func testAdmin() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
}

func testProduct(sellerID uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:         uuid.New(),
		Title:      "Mechanical Keyboard",
		Price:      129.99,
		Stock:      10,
		CategoryID: uuid.New(),
		SellerID:   sellerID,
		IsApproved: true,
		IsActive:   true,
	}
}
