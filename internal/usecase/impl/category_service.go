package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the active categories with their product counts.
func (srv *categoryService) List(ctx context.Context) ([]*usecase.CategoryDto, error) {
	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	dtos := make([]*usecase.CategoryDto, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, usecase.ToCategoryDto(category))
	}

	return dtos, nil
}

// Create persists a new active category.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*usecase.CategoryDto, error) {
	srv.log(ctx).Info("Creating category", slog.String("name", input.Name))

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Warn("Category creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	return usecase.ToCategoryDto(category), nil
}

// Delete removes a category. The check and delete run in one transaction so a
// product created concurrently cannot slip between them unobserved; the
// foreign key still backs the check up at the storage level.
func (srv *categoryService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting category", slog.Int64("categoryID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.Categories()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to load category for delete")
		}

		count, err := categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count products in category")
		}
		if count > 0 {
			return domainerrors.ErrCategoryInUse.WrapMessage("category still has products")
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Category delete failed", slog.Int64("categoryID", id), slog.Any("error", err))

		return err
	}

	return nil
}
