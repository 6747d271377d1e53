package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/redbank/bankmcp/internal/domain"
	"github.com/redbank/bankmcp/internal/usecase"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	GetByEmailFunc   func(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhoneFunc   func(ctx context.Context, phone string) (*domain.Customer, error)
	SearchByNameFunc func(ctx context.Context, name string) ([]*domain.Customer, error)
	SummaryFunc      func(ctx context.Context, customerID int64) (*domain.CustomerSummary, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{}
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if m.GetByPhoneFunc != nil {
		return m.GetByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) SearchByName(ctx context.Context, name string) ([]*domain.Customer, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockCustomerRepository) Summary(ctx context.Context, customerID int64) (*domain.CustomerSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, customerID)
	}
	return nil, domain.ErrCustomerNotFound
}

// MockStatementRepository is a mock implementation of StatementRepository.
type MockStatementRepository struct {
	ListByCustomerFunc func(ctx context.Context, customerID int64) ([]*domain.Statement, error)
	SummaryFunc        func(ctx context.Context, statementID int64) (*domain.StatementSummary, error)
}

func NewMockStatementRepository() *MockStatementRepository {
	return &MockStatementRepository{}
}

func (m *MockStatementRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Statement, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *MockStatementRepository) Summary(ctx context.Context, statementID int64) (*domain.StatementSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, statementID)
	}
	return nil, domain.ErrStatementNotFound
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	ListByStatementFunc func(ctx context.Context, statementID int64) ([]*domain.Transaction, error)
	ListByCustomerFunc  func(ctx context.Context, customerID int64, startDate, endDate string) ([]*domain.Transaction, error)
	SearchFunc          func(ctx context.Context, filter usecase.SearchFilter) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) ListByStatement(ctx context.Context, statementID int64) ([]*domain.Transaction, error) {
	if m.ListByStatementFunc != nil {
		return m.ListByStatementFunc(ctx, statementID)
	}
	return nil, nil
}

func (m *MockTransactionRepository) ListByCustomer(ctx context.Context, customerID int64, startDate, endDate string) ([]*domain.Transaction, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, startDate, endDate)
	}
	return nil, nil
}

func (m *MockTransactionRepository) Search(ctx context.Context, filter usecase.SearchFilter) ([]*domain.Transaction, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

// MockRetrier counts invocations and runs operations once.
type MockRetrier struct {
	mu    sync.Mutex
	Calls int

	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCacheMap is an in-memory Cache for tests that need real store/load
// behavior rather than expectation checking.
type MockCacheMap struct {
	mu      sync.Mutex
	entries map[string]string

	GetCalls int
	SetCalls int
}

func NewMockCacheMap() *MockCacheMap {
	return &MockCacheMap{entries: make(map[string]string)}
}

func (m *MockCacheMap) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	return "", usecase.ErrCacheMiss
}

func (m *MockCacheMap) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	m.entries[key] = value
	return nil
}

func (m *MockCacheMap) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
