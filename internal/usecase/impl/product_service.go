package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// Browse lists approved, active products for the storefront.
func (srv *productService) Browse(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}

	approved, active := true, true
	filter.Approved = &approved
	filter.Active = &active

	return srv.list(ctx, filter)
}

// ListMine lists the seller's own products regardless of approval state.
func (srv *productService) ListMine(ctx context.Context, sellerID uuid.UUID, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}
	filter.SellerID = &sellerID

	return srv.list(ctx, filter)
}

// ListAll lists every product for moderation, optionally narrowed by
// approval status.
func (srv *productService) ListAll(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}

	switch input.Status {
	case "":
	case "approved":
		approved := true
		filter.Approved = &approved
	case "pending":
		approved := false
		filter.Approved = &approved
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid status filter")
	}

	return srv.list(ctx, filter)
}

// GetProduct retrieves a product with its associations. Unapproved or
// inactive products stay hidden from everyone but their seller and admins.
func (srv *productService) GetProduct(ctx context.Context, viewer *entity.User, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if (!found.IsApproved || !found.IsActive) && !isOwnerOrAdmin(viewer, found.SellerID) {
			return domainerrors.ErrProductNotFound
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct lists a new product. Every new listing starts unapproved.
func (srv *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		SellerID:    sellerID,
		IsApproved:  false,
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.CategoryRepo().FindByID(ctx, input.CategoryID); err != nil {
			return err
		}

		return factory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Product created", "productID", product.ID, "sellerID", sellerID)

	return product, nil
}

// UpdateProduct applies changes to a product. Any update resets the
// approval flag, so edited listings go back through moderation.
func (srv *productService) UpdateProduct(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !isOwnerOrAdmin(actor, found.SellerID) {
			return domainerrors.ErrNotResourceOwner
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Price != nil {
			found.Price = *input.Price
		}
		if input.Images != nil {
			found.Images = input.Images
		}
		if input.Stock != nil {
			found.Stock = *input.Stock
		}
		if input.CategoryID != nil {
			if _, err := factory.CategoryRepo().FindByID(ctx, *input.CategoryID); err != nil {
				return err
			}
			found.CategoryID = *input.CategoryID
		}
		if input.IsActive != nil {
			found.IsActive = *input.IsActive
		}
		found.IsApproved = false

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product owned by the actor.
func (srv *productService) DeleteProduct(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !isOwnerOrAdmin(actor, found.SellerID) {
			return domainerrors.ErrNotResourceOwner
		}

		return productRepo.Delete(ctx, id)
	})
}

// ModerateProduct approves or rejects a pending product.
func (srv *productService) ModerateProduct(ctx context.Context, id uuid.UUID, approved bool) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		found.IsApproved = approved
		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to moderate product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Product moderated", "productID", id, "approved", approved)

	return product, nil
}

func (srv *productService) buildFilter(input usecase.ListProductsInput) (repository.ProductFilter, error) {
	page, sort, err := pageAndSort(input.ListQuery, productSortFields)
	if err != nil {
		return repository.ProductFilter{}, err
	}

	return repository.ProductFilter{
		CategoryID: input.CategoryID,
		SellerID:   input.SellerID,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		Search:     input.Search,
		Pagination: page,
		Sort:       sort,
	}, nil
}

func (srv *productService) list(ctx context.Context, filter repository.ProductFilter) (*usecase.ProductListOutput, error) {
	var output *usecase.ProductListOutput

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		products, total, err := factory.ProductRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}

		output = &usecase.ProductListOutput{
			Products: products,
			PageInfo: usecase.NewPageInfo(filter.Pagination.Page, filter.Pagination.Limit, total),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
