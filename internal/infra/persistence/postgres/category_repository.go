package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the domain.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// categoryRow carries the ProductCount projection alongside the category
// columns for the ListActive scan.
type categoryRow struct {
	model.CategoryModel
	ProductCount int
}

// ListActive retrieves active categories ordered by name, each with the count
// of its non-deleted products.
func (repo *categoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryRow
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("categories.*, (?) AS product_count",
			repo.db.Model(&model.ProductModel{}).
				Select("COUNT(*)").
				Where("products.category_id = categories.id AND products.is_deleted = ?", false),
		).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		category := toCategoryDomain(&rows[i].CategoryModel)
		category.ProductCount = rows[i].ProductCount
		categories = append(categories, category)
	}

	return categories, nil
}

// Create persists a new category entity to the database.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// CountProducts counts the non-deleted products in a category.
func (repo *categoryRepository) CountProducts(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products in category")
	}

	return count, nil
}

// Delete removes a category row. The use case checks CountProducts first; the
// foreign key constraint backs that check up at the storage level.
func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryInUse.WrapMessage("category still referenced by products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// toCategoryDomain maps the GORM persistence model to the pure domain entity.
func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// fromCategoryDomain maps the pure domain entity to the GORM persistence model.
func fromCategoryDomain(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
