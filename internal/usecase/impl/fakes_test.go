package impl

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. They keep entities in maps
// and implement the same visibility rules as the real repositories so the
// services under test see consistent behavior.

type fakeRepositoryFactory struct {
	users      *fakeUserRepository
	products   *fakeProductRepository
	categories *fakeCategoryRepository
	orders     *fakeOrderRepository
}

func newFakeFactory() *fakeRepositoryFactory {
	products := &fakeProductRepository{byID: map[int64]*entity.Product{}}

	return &fakeRepositoryFactory{
		users:      &fakeUserRepository{byID: map[uuid.UUID]*entity.User{}},
		products:   products,
		categories: &fakeCategoryRepository{byID: map[int64]*entity.Category{}, products: products},
		orders:     &fakeOrderRepository{byID: map[int64]*entity.Order{}},
	}
}

func (f *fakeRepositoryFactory) Users() repository.UserRepository         { return f.users }
func (f *fakeRepositoryFactory) Products() repository.ProductRepository   { return f.products }
func (f *fakeRepositoryFactory) Categories() repository.CategoryRepository { return f.categories }
func (f *fakeRepositoryFactory) Orders() repository.OrderRepository       { return f.orders }

// fakeTxManager satisfies TransactionManager over a single shared factory.
// It records commit/rollback so tests can assert transaction outcomes.
type fakeTxManager struct {
	factory    *fakeRepositoryFactory
	committed  bool
	rolledBack bool
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := fn(m.factory); err != nil {
		m.rolledBack = true

		return err
	}
	m.committed = true

	return nil
}

func (m *fakeTxManager) Begin(context.Context) (repository.Transaction, error) {
	return &fakeTransaction{manager: m}, nil
}

type fakeTransaction struct {
	manager *fakeTxManager
}

func (t *fakeTransaction) Repos() repository.RepositoryFactory { return t.manager.factory }

func (t *fakeTransaction) Commit() error {
	t.manager.committed = true

	return nil
}

func (t *fakeTransaction) Rollback() error {
	t.manager.rolledBack = true

	return nil
}

// --- user repository fake ---

type fakeUserRepository struct {
	byID map[uuid.UUID]*entity.User
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byID[user.ID] = user

	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.byID[user.ID] = user

	return nil
}

// --- product repository fake ---

type fakeProductRepository struct {
	byID   map[int64]*entity.Product
	nextID int64
}

func (r *fakeProductRepository) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	product, ok := r.byID[id]
	if !ok || product.IsDeleted {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r *fakeProductRepository) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for id := int64(1); id <= r.nextID; id++ {
		product, ok := r.byID[id]
		if !ok || product.IsDeleted {
			continue
		}
		if filter.CategoryID != nil && product.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.SearchTerm != "" &&
			!strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.SearchTerm)) {
			continue
		}
		out = append(out, product)
	}

	return out, nil
}

func (r *fakeProductRepository) Create(_ context.Context, product *entity.Product) error {
	r.nextID++
	product.ID = r.nextID
	r.byID[product.ID] = product

	return nil
}

func (r *fakeProductRepository) Update(_ context.Context, product *entity.Product) error {
	existing, ok := r.byID[product.ID]
	if !ok || existing.IsDeleted {
		return repository.ErrProductNotFound
	}
	r.byID[product.ID] = product

	return nil
}

func (r *fakeProductRepository) SoftDelete(_ context.Context, id int64) error {
	product, ok := r.byID[id]
	if !ok || product.IsDeleted {
		return repository.ErrProductNotFound
	}
	product.IsDeleted = true

	return nil
}

// --- category repository fake ---

type fakeCategoryRepository struct {
	byID     map[int64]*entity.Category
	nextID   int64
	products *fakeProductRepository
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	if category, ok := r.byID[id]; ok {
		return category, nil
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for id := int64(1); id <= r.nextID; id++ {
		category, ok := r.byID[id]
		if !ok || !category.IsActive {
			continue
		}
		if r.products != nil {
			count, _ := r.CountProducts(ctx, id)
			category.ProductCount = int(count)
		}
		out = append(out, category)
	}

	return out, nil
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.nextID++
	category.ID = r.nextID
	r.byID[category.ID] = category

	return nil
}

func (r *fakeCategoryRepository) CountProducts(_ context.Context, id int64) (int64, error) {
	if r.products == nil {
		return 0, nil
	}

	var count int64
	for _, product := range r.products.byID {
		if product.CategoryID == id && !product.IsDeleted {
			count++
		}
	}

	return count, nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(r.byID, id)

	return nil
}

// --- order repository fake ---

type fakeOrderRepository struct {
	byID   map[int64]*entity.Order
	nextID int64
}

func (r *fakeOrderRepository) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	if order, ok := r.byID[id]; ok {
		return order, nil
	}

	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var out []*entity.Order
	for id := r.nextID; id >= 1; id-- {
		order, ok := r.byID[id]
		if !ok || order.UserID != userID {
			continue
		}
		out = append(out, order)
	}

	return out, nil
}

func (r *fakeOrderRepository) Create(_ context.Context, order *entity.Order) error {
	r.nextID++
	order.ID = r.nextID
	for i, item := range order.Items {
		item.ID = int64(i + 1)
		item.OrderID = order.ID
	}
	r.byID[order.ID] = order

	return nil
}

// --- service fakes ---

// fakePasswordHasher hashes by prefixing, keeping tests fast and deterministic.
type fakePasswordHasher struct {
	strengthErr error
}

func (h *fakePasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (h *fakePasswordHasher) ValidatePasswordStrength(string) error {
	return h.strengthErr
}

type fakeTokenService struct{}

func (s *fakeTokenService) GenerateToken(userID uuid.UUID, _ string, _ []string) (string, error) {
	return "token-" + userID.String(), nil
}

func (s *fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, errors.New("not implemented in fake")
}
