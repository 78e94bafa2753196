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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListActive returns every active category with approved-product counts.
func (srv *categoryService) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.CategoryRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// List returns a page of categories for administration.
func (srv *categoryService) List(ctx context.Context, input usecase.ListCategoriesInput) (*usecase.CategoryListOutput, error) {
	page, sort, err := pageAndSort(input.ListQuery, categorySortFields)
	if err != nil {
		return nil, err
	}

	var output *usecase.CategoryListOutput

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		categories, total, err := factory.CategoryRepo().List(ctx, repository.CategoryFilter{
			Search:     input.Search,
			Pagination: page,
			Sort:       sort,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}

		output = &usecase.CategoryListOutput{
			Categories: categories,
			PageInfo:   usecase.NewPageInfo(page.Page, page.Limit, total),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetCategory retrieves a single category.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.CategoryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// CreateCategory creates a category. Names are unique case-insensitively.
func (srv *categoryService) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		categoryRepo := factory.CategoryRepo()

		// Pre-check for a friendly conflict; the lower(name) index still
		// backstops concurrent creates.
		if _, err := categoryRepo.FindByName(ctx, input.Name); err == nil {
			return domainerrors.ErrCategoryNameTaken
		} else if !errors.Is(err, domainerrors.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to check category name")
		}

		return categoryRepo.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Category created", "categoryID", category.ID, "name", category.Name)

	return category, nil
}

// UpdateCategory applies changes to a category, keeping the name unique.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		categoryRepo := factory.CategoryRepo()

		found, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Name != nil && *input.Name != found.Name {
			existing, err := categoryRepo.FindByName(ctx, *input.Name)
			if err == nil && existing.ID != id {
				return domainerrors.ErrCategoryNameTaken
			}
			if err != nil && !errors.Is(err, domainerrors.ErrCategoryNotFound) {
				return errors.Wrap(err, "failed to check category name")
			}
			found.Name = *input.Name
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Image != nil {
			found.Image = *input.Image
		}
		if input.IsActive != nil {
			found.IsActive = *input.IsActive
		}

		if err := categoryRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category unless products still reference it.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		categoryRepo := factory.CategoryRepo()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			return err
		}

		count, err := categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count category products")
		}
		if count > 0 {
			return domainerrors.ErrCategoryHasProducts
		}

		return categoryRepo.Delete(ctx, id)
	})
}
