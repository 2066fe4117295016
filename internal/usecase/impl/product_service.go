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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new product owned by the authenticated caller. After the
// insert the product is re-read so the projection carries the joined category
// and owner names, not just the echoed input.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductDto, error) {
	identity := deliverycontext.GetIdentity(ctx)
	if identity == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("product creation requires an authenticated caller")
	}

	srv.log(ctx).Info("Creating product", slog.String("name", input.Name), slog.Any("userID", identity.UserID))

	var createdID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.Categories().FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
			}

			return errors.Wrap(err, "failed to check category for product creation")
		}

		product := &entity.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			ImageURL:    input.ImageURL,
			CategoryID:  input.CategoryID,
			UserID:      identity.UserID,
		}

		if err := repoFactory.Products().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		createdID = product.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Product creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	created, err := srv.productRepo.FindByID(ctx, createdID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read created product")
	}

	srv.log(ctx).Debug("Product created", slog.Int64("productID", created.ID))

	return usecase.ToProductDto(created), nil
}

// GetByID returns a single non-deleted product projection.
func (srv *productService) GetByID(ctx context.Context, id int64) (*usecase.ProductDto, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return usecase.ToProductDto(product), nil
}

// List returns the non-deleted product projections matching the filter.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) ([]*usecase.ProductDto, error) {
	filter := repository.ProductFilter{
		CategoryID: input.CategoryID,
		SearchTerm: input.SearchTerm,
		Page:       input.Page,
		PageSize:   input.PageSize,
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	dtos := make([]*usecase.ProductDto, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, usecase.ToProductDto(product))
	}

	return dtos, nil
}

// Update fully replaces a product's editable fields and returns the fresh
// projection.
func (srv *productService) Update(ctx context.Context, id int64, input *usecase.UpdateProductInput) (*usecase.ProductDto, error) {
	srv.log(ctx).Info("Updating product", slog.Int64("productID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.Products().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(err, "failed to load product for update")
		}

		if _, err := repoFactory.Categories().FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
			}

			return errors.Wrap(err, "failed to check category for product update")
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Stock = input.Stock
		product.ImageURL = input.ImageURL
		product.CategoryID = input.CategoryID

		if err := repoFactory.Products().Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Product update failed", slog.Int64("productID", id), slog.Any("error", err))

		return nil, err
	}

	updated, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read updated product")
	}

	return usecase.ToProductDto(updated), nil
}

// Delete soft-deletes a product. The row and its order history survive.
func (srv *productService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting product", slog.Int64("productID", id))

	if err := srv.productRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
