package postgres

import (
	"context"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		PasswordHash: "hashed",
		FirstName:    "Sam",
		LastName:     "Seller",
		IsActive:     true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name, IsActive: true}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))

	return category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, categoryID int64, userID uuid.UUID) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:       name,
		Price:      9.99,
		Stock:      5,
		CategoryID: categoryID,
		UserID:     userID,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := seedUser(t, db, "jane@example.com")
	assert.NotEqual(t, uuid.Nil, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "jane@example.com")

	err := repo.Create(ctx, &entity.User{
		Email:        "jane@example.com",
		PasswordHash: "other",
		IsActive:     true,
	})
	require.Error(t, err)
}

// The inactive flag must survive the insert as written, not revert to a
// column default.
func TestUserRepository_PersistsInactiveFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "inactive@example.com", PasswordHash: "hashed", IsActive: false}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "inactive@example.com")
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestProductRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "seller@example.com")
	category := seedCategory(t, db, "Gadgets")
	product := seedProduct(t, db, "Widget", category.ID, user.ID)

	require.NoError(t, repo.SoftDelete(ctx, product.ID))

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	list, err := repo.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	// The row itself survives for order history.
	var count int64
	require.NoError(t, db.Model(&model.ProductModel{}).Where("id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Deleting twice reports not-found.
	assert.ErrorIs(t, repo.SoftDelete(ctx, product.ID), repository.ErrProductNotFound)
}

func TestProductRepository_FindByID_EagerLoads(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "seller@example.com")
	category := seedCategory(t, db, "Gadgets")
	product := seedProduct(t, db, "Widget", category.ID, user.ID)

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	require.NotNil(t, found.User)
	assert.Equal(t, "Gadgets", found.Category.Name)
	assert.Equal(t, "Sam Seller", found.User.DisplayName())
}

func TestProductRepository_ListFiltersAndPaginates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "seller@example.com")
	gadgets := seedCategory(t, db, "Gadgets")
	tools := seedCategory(t, db, "Tools")

	seedProduct(t, db, "Blue Widget", gadgets.ID, user.ID)
	seedProduct(t, db, "Red Widget", gadgets.ID, user.ID)
	seedProduct(t, db, "Hammer", tools.ID, user.ID)

	byCategory, err := repo.List(ctx, repository.ProductFilter{CategoryID: &gadgets.ID})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	// Search is case-insensitive.
	bySearch, err := repo.List(ctx, repository.ProductFilter{SearchTerm: "WIDGET"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)

	// Pagination is stable: ordered by id ascending.
	pageOne, err := repo.List(ctx, repository.ProductFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, pageOne, 2)
	pageTwo, err := repo.List(ctx, repository.ProductFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, pageTwo, 1)
	assert.Less(t, pageOne[0].ID, pageOne[1].ID)
	assert.Less(t, pageOne[1].ID, pageTwo[0].ID)
}

func TestCategoryRepository_ListActiveWithCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "seller@example.com")
	gadgets := seedCategory(t, db, "Gadgets")
	empty := seedCategory(t, db, "Empty")

	inactive := &entity.Category{Name: "Hidden", IsActive: false}
	require.NoError(t, repo.Create(ctx, inactive))

	seedProduct(t, db, "Widget", gadgets.ID, user.ID)
	deleted := seedProduct(t, db, "Old Widget", gadgets.ID, user.ID)
	require.NoError(t, productRepo.SoftDelete(ctx, deleted.ID))

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	counts := map[string]int{}
	for _, category := range list {
		counts[category.Name] = category.ProductCount
	}
	assert.Equal(t, 1, counts[gadgets.Name]) // soft-deleted product not counted
	assert.Equal(t, 0, counts[empty.Name])
	assert.NotContains(t, counts, inactive.Name)
}

func TestCategoryRepository_DeleteRestrictedWhileInUse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "seller@example.com")
	gadgets := seedCategory(t, db, "Gadgets")
	empty := seedCategory(t, db, "Empty")
	seedProduct(t, db, "Widget", gadgets.ID, user.ID)

	count, err := repo.CountProducts(ctx, gadgets.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// The foreign key refuses the delete even if the application check is bypassed.
	require.Error(t, repo.Delete(ctx, gadgets.ID))

	require.NoError(t, repo.Delete(ctx, empty.ID))
	_, err = repo.FindByID(ctx, empty.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestOrderRepository_CreateAndRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	buyer := seedUser(t, db, "buyer@example.com")
	other := seedUser(t, db, "other@example.com")
	category := seedCategory(t, db, "Gadgets")
	product := seedProduct(t, db, "Widget", category.ID, buyer.ID)

	first := &entity.Order{
		OrderNumber: "ORD-20260828120000-AAAAAAAA",
		UserID:      buyer.ID,
		OrderDate:   time.Now().UTC().Add(-time.Hour),
		Status:      entity.OrderStatusPending,
		TotalAmount: 19.98,
		Items: []*entity.OrderItem{
			{ProductID: product.ID, Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98},
		},
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NotZero(t, first.ID)
	require.NotZero(t, first.Items[0].ID)
	assert.Equal(t, first.ID, first.Items[0].OrderID)

	second := &entity.Order{
		OrderNumber: "ORD-20260828130000-BBBBBBBB",
		UserID:      buyer.ID,
		OrderDate:   time.Now().UTC(),
		Status:      entity.OrderStatusPending,
		TotalAmount: 9.99,
		Items: []*entity.OrderItem{
			{ProductID: product.ID, Quantity: 1, UnitPrice: 9.99, TotalPrice: 9.99},
		},
	}
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, 2, found.Items[0].Quantity)

	mine, err := repo.ListByUser(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	// Newest first.
	assert.Equal(t, second.ID, mine[0].ID)

	none, err := repo.ListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// Audit columns are stamped from the caller identity carried in context.
func TestAuditFields_StampActorFromContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	user := seedUser(t, db, "seller@example.com")
	category := seedCategory(t, db, "Gadgets")

	ctx := deliverycontext.WithIdentity(context.Background(), &deliverycontext.Identity{
		UserID: user.ID,
		Email:  user.Email,
	})

	product := &entity.Product{
		Name:       "Widget",
		Price:      9.99,
		Stock:      5,
		CategoryID: category.ID,
		UserID:     user.ID,
	}
	require.NoError(t, repo.Create(ctx, product))

	var stored model.ProductModel
	require.NoError(t, db.Where("id = ?", product.ID).First(&stored).Error)
	assert.Equal(t, user.ID.String(), stored.CreatedBy)
	assert.Equal(t, user.ID.String(), stored.UpdatedBy)
}

// Updates stamp the editing actor, not the creator; soft delete is an update too.
func TestAuditFields_StampActorOnUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	creator := seedUser(t, db, "creator@example.com")
	editor := seedUser(t, db, "editor@example.com")
	category := seedCategory(t, db, "Gadgets")

	creatorCtx := deliverycontext.WithIdentity(context.Background(), &deliverycontext.Identity{
		UserID: creator.ID,
	})
	product := &entity.Product{
		Name:       "Widget",
		Price:      9.99,
		Stock:      5,
		CategoryID: category.ID,
		UserID:     creator.ID,
	}
	require.NoError(t, repo.Create(creatorCtx, product))

	editorCtx := deliverycontext.WithIdentity(context.Background(), &deliverycontext.Identity{
		UserID: editor.ID,
	})
	loaded, err := repo.FindByID(editorCtx, product.ID)
	require.NoError(t, err)
	loaded.Stock = 4
	require.NoError(t, repo.Update(editorCtx, loaded))

	var stored model.ProductModel
	require.NoError(t, db.Where("id = ?", product.ID).First(&stored).Error)
	assert.Equal(t, creator.ID.String(), stored.CreatedBy)
	assert.Equal(t, editor.ID.String(), stored.UpdatedBy)

	require.NoError(t, repo.SoftDelete(creatorCtx, product.ID))
	require.NoError(t, db.Where("id = ?", product.ID).First(&stored).Error)
	assert.Equal(t, creator.ID.String(), stored.UpdatedBy)
}

func TestTransactionManager_ExecuteRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	user := seedUser(t, db, "seller@example.com")
	category := seedCategory(t, db, "Gadgets")

	sentinel := assert.AnError
	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.Products().Create(ctx, &entity.Product{
			Name:       "Doomed",
			Price:      1,
			CategoryID: category.ID,
			UserID:     user.ID,
		}); err != nil {
			return err
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	list, listErr := NewProductRepository(db).List(ctx, repository.ProductFilter{})
	require.NoError(t, listErr)
	assert.Empty(t, list)
}

func TestTransactionManager_ExplicitCommitAndRollback(t *testing.T) {
	db := setupTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	user := seedUser(t, db, "seller@example.com")
	category := seedCategory(t, db, "Gadgets")

	// Rolled back work is invisible.
	tx, err := tm.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Repos().Products().Create(ctx, &entity.Product{
		Name:       "Phantom",
		Price:      1,
		CategoryID: category.ID,
		UserID:     user.ID,
	}))
	require.NoError(t, tx.Rollback())

	list, err := NewProductRepository(db).List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	// Committed work is visible.
	tx, err = tm.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Repos().Products().Create(ctx, &entity.Product{
		Name:       "Durable",
		Price:      1,
		CategoryID: category.ID,
		UserID:     user.ID,
	}))
	require.NoError(t, tx.Commit())

	list, err = NewProductRepository(db).List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Durable", list[0].Name)
}
