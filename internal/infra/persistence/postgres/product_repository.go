package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultProductPageSize = 10
	maxProductPageSize     = 100
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single non-deleted product with its category and owning
// user eagerly loaded, so read projections need no further queries.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves non-deleted products matching the filter, ordered by id
// ascending so pagination is stable across requests.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultProductPageSize
	}
	if pageSize > maxProductPageSize {
		pageSize = maxProductPageSize
	}

	query := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("is_deleted = ?", false)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		// LOWER + LIKE keeps the match case-insensitive on both PostgreSQL and SQLite.
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var productMs []model.ProductModel
	err := query.
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// Create persists a new product entity to the database.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the product entity with the generated ID and timestamps
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	product.CreatedBy = productM.CreatedBy
	product.UpdatedBy = productM.UpdatedBy

	return nil
}

// Update modifies an existing non-deleted product entity in the database.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND is_deleted = ?", productM.ID, false).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"stock":       productM.Stock,
			"image_url":   productM.ImageURL,
			"category_id": productM.CategoryID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SoftDelete marks a product invisible to reads without removing the row.
// Order items keep referencing it for historical pricing.
func (repo *productRepository) SoftDelete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// toProductDomain maps the GORM persistence model to the pure domain entity.
func toProductDomain(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	product := &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		ImageURL:    m.ImageURL,
		CategoryID:  m.CategoryID,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
		IsDeleted:   m.IsDeleted,
	}

	if m.Category != nil {
		product.Category = toCategoryDomain(m.Category)
	}
	if m.User != nil {
		product.User = toUserDomain(m.User)
	}

	return product
}

// fromProductDomain maps the pure domain entity to the GORM persistence model.
// Associations are never written through the product; only scalar columns map.
func fromProductDomain(e *entity.Product) *model.ProductModel {
	if e == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Stock:       e.Stock,
		ImageURL:    e.ImageURL,
		CategoryID:  e.CategoryID,
		UserID:      e.UserID,
		IsDeleted:   e.IsDeleted,
		AuditFields: model.AuditFields{
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
			CreatedBy: e.CreatedBy,
			UpdatedBy: e.UpdatedBy,
		},
	}
}
