package commands_test

import (
	"context"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the handler tests in this package.

type MockOrderRegistry struct {
	mock.Mock
}

func (m *MockOrderRegistry) NextOrderNumber() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockOrderRegistry) InsertActive(o *order.Order) error {
	args := m.Called(o)
	return args.Error(0)
}

func (m *MockOrderRegistry) FindAnyPartition(id kernel.OrderID) (*order.Order, order.Partition, error) {
	args := m.Called(id)
	var o *order.Order
	if args.Get(0) != nil {
		o = args.Get(0).(*order.Order)
	}
	return o, args.Get(1).(order.Partition), args.Error(2)
}

func (m *MockOrderRegistry) MoveTo(id kernel.OrderID, from, target order.Partition) error {
	args := m.Called(id, from, target)
	return args.Error(0)
}

func (m *MockOrderRegistry) RemoveEverywhere(id kernel.OrderID) {
	m.Called(id)
}

func (m *MockOrderRegistry) Clear(p order.Partition) {
	m.Called(p)
}

func (m *MockOrderRegistry) Snapshot(p order.Partition) []*order.Order {
	args := m.Called(p)
	return args.Get(0).([]*order.Order)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(event string, data any) {
	m.Called(event, data)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSession) Send(event string, data any) error {
	args := m.Called(event, data)
	return args.Error(0)
}

type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) Add(ctx context.Context, aggregate *merchant.Merchant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMerchantRepository) Update(ctx context.Context, aggregate *merchant.Merchant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMerchantRepository) Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error) {
	args := m.Called(ctx, id)
	var res *merchant.Merchant
	if args.Get(0) != nil {
		res = args.Get(0).(*merchant.Merchant)
	}
	return res, args.Error(1)
}

func (m *MockMerchantRepository) GetBySlug(ctx context.Context, slug string) (*merchant.Merchant, error) {
	args := m.Called(ctx, slug)
	var res *merchant.Merchant
	if args.Get(0) != nil {
		res = args.Get(0).(*merchant.Merchant)
	}
	return res, args.Error(1)
}

func (m *MockMerchantRepository) GetAllWithExpiredTrial(ctx context.Context) ([]*merchant.Merchant, error) {
	args := m.Called(ctx)
	var res []*merchant.Merchant
	if args.Get(0) != nil {
		res = args.Get(0).([]*merchant.Merchant)
	}
	return res, args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Add(ctx context.Context, aggregate *merchant.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, aggregate *merchant.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*merchant.Product, error) {
	args := m.Called(ctx, id)
	var res *merchant.Product
	if args.Get(0) != nil {
		res = args.Get(0).(*merchant.Product)
	}
	return res, args.Error(1)
}

func (m *MockProductRepository) GetAllByMerchant(ctx context.Context, merchantID kernel.UUID) ([]*merchant.Product, error) {
	args := m.Called(ctx, merchantID)
	var res []*merchant.Product
	if args.Get(0) != nil {
		res = args.Get(0).([]*merchant.Product)
	}
	return res, args.Error(1)
}

func (m *MockProductRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportedSaleRepository struct {
	mock.Mock
}

func (m *MockReportedSaleRepository) Add(ctx context.Context, aggregate *merchant.ReportedSale) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReportedSaleRepository) GetAllByMerchant(ctx context.Context, merchantID kernel.UUID) ([]*merchant.ReportedSale, error) {
	args := m.Called(ctx, merchantID)
	var res []*merchant.ReportedSale
	if args.Get(0) != nil {
		res = args.Get(0).([]*merchant.ReportedSale)
	}
	return res, args.Error(1)
}

type MockMerchantUoW struct {
	mock.Mock
}

func (m *MockMerchantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMerchantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMerchantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMerchantUoW) MerchantRepository() ports.MerchantRepository {
	args := m.Called()
	return args.Get(0).(ports.MerchantRepository)
}

type MockMerchantUoWFactory struct {
	mock.Mock
}

func (m *MockMerchantUoWFactory) Create() commands.MerchantUoW {
	args := m.Called()
	return args.Get(0).(commands.MerchantUoW)
}

type MockCatalogUoW struct {
	MockMerchantUoW
}

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCatalogUoWFactory struct {
	mock.Mock
}

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockSalesUoW struct {
	MockMerchantUoW
}

func (m *MockSalesUoW) ReportedSaleRepository() ports.ReportedSaleRepository {
	args := m.Called()
	return args.Get(0).(ports.ReportedSaleRepository)
}

type MockSalesUoWFactory struct {
	mock.Mock
}

func (m *MockSalesUoWFactory) Create() commands.SalesUoW {
	args := m.Called()
	return args.Get(0).(commands.SalesUoW)
}
