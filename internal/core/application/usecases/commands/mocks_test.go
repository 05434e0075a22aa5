package commands_test

import (
	"context"
	"io"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/commands"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/payment"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
	"github.com/hmucanze19/algafood-api/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStaleCreated(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockPaymentMethodRepository struct{ mock.Mock }

func (m *MockPaymentMethodRepository) Add(ctx context.Context, p *payment.Method) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) GetByID(ctx context.Context, id int64) (*payment.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Method), args.Error(1)
}

func (m *MockPaymentMethodRepository) GetAll(ctx context.Context) ([]*payment.Method, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Method), args.Error(1)
}

type MockProductPhotoRepository struct{ mock.Mock }

func (m *MockProductPhotoRepository) Add(ctx context.Context, p *restaurant.ProductPhoto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductPhotoRepository) GetByProduct(ctx context.Context, restaurantID, productID int64) (*restaurant.ProductPhoto, error) {
	args := m.Called(ctx, restaurantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.ProductPhoto), args.Error(1)
}

func (m *MockProductPhotoRepository) Delete(ctx context.Context, p *restaurant.ProductPhoto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockPhotoStorage struct{ mock.Mock }

func (m *MockPhotoStorage) Store(ctx context.Context, name string, content io.Reader) error {
	args := m.Called(ctx, name, content)
	return args.Error(0)
}

func (m *MockPhotoStorage) Retrieve(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockPhotoStorage) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlacementUoW struct{ mockTx }

func (m *MockPlacementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPlacementUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockPlacementUoW) PaymentMethodRepository() ports.PaymentMethodRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentMethodRepository)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockRestaurantUoW struct{ mockTx }

func (m *MockRestaurantUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockPhotoUoW struct{ mockTx }

func (m *MockPhotoUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockPhotoUoW) ProductPhotoRepository() ports.ProductPhotoRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductPhotoRepository)
}

type MockPhotoUoWFactory struct{ mock.Mock }

func (m *MockPhotoUoWFactory) Create() commands.PhotoUoW {
	args := m.Called()
	return args.Get(0).(commands.PhotoUoW)
}

type MockUserUoW struct{ mockTx }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events []order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func testAddress() kernel.Address {
	addr, err := kernel.NewAddress("Baker Street", "221b", "", "Marylebone", "London", "LDN", "NW1 6XE")
	if err != nil {
		panic(err)
	}
	return addr
}

func money(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

const (
	testRestaurantID    = int64(7)
	testPaymentMethodID = int64(3)
	testCustomerID      = int64(42)
	testProductID       = int64(11)
)

// testRestaurant builds an active, open restaurant accepting payment method 3
// with one active product (id 11, price 25.00) on the menu.
func testRestaurant() *restaurant.Restaurant {
	now := time.Now()
	products := []*restaurant.Product{
		restaurant.RestoreProduct(testProductID, "Margherita", "Tomato and mozzarella", money("25.00"), true),
	}
	return restaurant.RestoreRestaurant(
		testRestaurantID, "Luigi's", "Italian", money("5.00"),
		true, true, []int64{testPaymentMethodID}, products, now, now,
	)
}

func testPaymentMethod() *payment.Method {
	return payment.RestoreMethod(testPaymentMethodID, "Credit card")
}

// storedOrder builds a persisted order in CREATED status with a code.
func storedOrder() *order.Order {
	item, err := order.NewItem(testProductID, "Margherita", 2, money("25.00"), "")
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(testCustomerID, testRestaurantID, testPaymentMethodID, testAddress(), []*order.Item{item})
	if err != nil {
		panic(err)
	}
	o.AssignShippingFee(money("5.00"))
	o.ComputeTotal()
	o.AssignCode()
	o.AssignID(1)
	return o
}
