package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

// MockTransaction is a mock implementation of usecase.Transaction.
// Cleanup callbacks registered with OnClose run exactly once, on commit or
// rollback, which lets repository mocks emulate row locks held for the
// duration of a transaction.
type MockTransaction struct {
	mu      sync.Mutex
	closed  bool
	cleanup []func()

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) OnClose(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cleanup = append(t.cleanup, fn)
}

func (t *MockTransaction) close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	cleanup := t.cleanup
	t.cleanup = nil
	t.mu.Unlock()

	for _, fn := range cleanup {
		fn()
	}
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	defer t.close()
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	defer t.close()
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of usecase.TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockLoanRepository is a mock implementation of LoanRepository backed by an
// in-memory map. GetByIDForUpdate takes a per-loan mutex that is released
// when the surrounding MockTransaction commits or rolls back, mirroring a
// SELECT ... FOR UPDATE row lock.
type MockLoanRepository struct {
	mu    sync.RWMutex
	loans map[string]*domain.LoanAccount
	locks map[string]*sync.Mutex

	CreateFunc                      func(ctx context.Context, tx usecase.Transaction, loan *domain.LoanAccount) error
	GetByIDFunc                     func(ctx context.Context, id string) (*domain.LoanAccount, error)
	GetByReferenceFunc              func(ctx context.Context, referenceCode string) (*domain.LoanAccount, error)
	GetByIDForUpdateFunc            func(ctx context.Context, tx usecase.Transaction, id string) (*domain.LoanAccount, error)
	ResolveByBorrowerIdentifierFunc func(ctx context.Context, raw, normalized string) (*domain.LoanAccount, error)
	UpdateOutstandingBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	ListFunc                        func(ctx context.Context, limit, offset int) ([]*domain.LoanAccount, error)
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{
		loans: make(map[string]*domain.LoanAccount),
		locks: make(map[string]*sync.Mutex),
	}
}

// Add seeds the repository with a loan.
func (m *MockLoanRepository) Add(loan *domain.LoanAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans[loan.ID] = loan
}

func (m *MockLoanRepository) Create(ctx context.Context, tx usecase.Transaction, loan *domain.LoanAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, loan)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.loans {
		if existing.ReferenceCode == loan.ReferenceCode {
			return domain.ErrDuplicateLoanRef
		}
	}
	m.loans[loan.ID] = loan
	return nil
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id string) (*domain.LoanAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if loan, ok := m.loans[id]; ok {
		return loan, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) GetByReference(ctx context.Context, referenceCode string) (*domain.LoanAccount, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, referenceCode)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, loan := range m.loans {
		if loan.ReferenceCode == referenceCode {
			return loan, nil
		}
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.LoanAccount, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}

	m.mu.Lock()
	loan, ok := m.loans[id]
	if !ok {
		m.mu.Unlock()
		return nil, domain.ErrLoanNotFound
	}
	lock, exists := m.locks[id]
	if !exists {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	if mockTx, ok := tx.(*MockTransaction); ok {
		mockTx.OnClose(lock.Unlock)
	} else {
		lock.Unlock()
	}

	return loan, nil
}

func (m *MockLoanRepository) ResolveByBorrowerIdentifier(ctx context.Context, raw, normalized string) (*domain.LoanAccount, error) {
	if m.ResolveByBorrowerIdentifierFunc != nil {
		return m.ResolveByBorrowerIdentifierFunc(ctx, raw, normalized)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, loan := range m.loans {
		if loan.BorrowerIdentifier == raw || loan.BorrowerIdentifier == normalized {
			return loan, nil
		}
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) UpdateOutstandingBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateOutstandingBalanceFunc != nil {
		return m.UpdateOutstandingBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if loan, ok := m.loans[id]; ok {
		loan.OutstandingBalance = balance
		loan.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockLoanRepository) List(ctx context.Context, limit, offset int) ([]*domain.LoanAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	loans := make([]*domain.LoanAccount, 0, len(m.loans))
	for _, loan := range m.loans {
		loans = append(loans, loan)
	}
	return loans, nil
}

// MockInstallmentRepository is a mock implementation of InstallmentRepository.
// It returns the stored installment pointers directly, so allocation
// mutations made by the use case are visible to subsequent calls.
type MockInstallmentRepository struct {
	mu        sync.RWMutex
	schedules map[string][]*domain.Installment

	CreateBatchFunc         func(ctx context.Context, tx usecase.Transaction, installments []*domain.Installment) error
	ListByLoanFunc          func(ctx context.Context, loanAccountID string) ([]*domain.Installment, error)
	ListByLoanForUpdateFunc func(ctx context.Context, tx usecase.Transaction, loanAccountID string) ([]*domain.Installment, error)
	UpdateAllocationFunc    func(ctx context.Context, tx usecase.Transaction, installment *domain.Installment) error
	UpdateBalancesFunc      func(ctx context.Context, tx usecase.Transaction, installment *domain.Installment) error
}

func NewMockInstallmentRepository() *MockInstallmentRepository {
	return &MockInstallmentRepository{
		schedules: make(map[string][]*domain.Installment),
	}
}

// Add seeds the repository with a schedule.
func (m *MockInstallmentRepository) Add(loanAccountID string, installments []*domain.Installment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules[loanAccountID] = installments
}

func (m *MockInstallmentRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, installments []*domain.Installment) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, installments)
	}
	if len(installments) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	loanID := installments[0].LoanAccountID
	m.schedules[loanID] = append(m.schedules[loanID], installments...)
	return nil
}

func (m *MockInstallmentRepository) ListByLoan(ctx context.Context, loanAccountID string) ([]*domain.Installment, error) {
	if m.ListByLoanFunc != nil {
		return m.ListByLoanFunc(ctx, loanAccountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.schedules[loanAccountID], nil
}

func (m *MockInstallmentRepository) ListByLoanForUpdate(ctx context.Context, tx usecase.Transaction, loanAccountID string) ([]*domain.Installment, error) {
	if m.ListByLoanForUpdateFunc != nil {
		return m.ListByLoanForUpdateFunc(ctx, tx, loanAccountID)
	}
	return m.ListByLoan(ctx, loanAccountID)
}

func (m *MockInstallmentRepository) UpdateAllocation(ctx context.Context, tx usecase.Transaction, installment *domain.Installment) error {
	if m.UpdateAllocationFunc != nil {
		return m.UpdateAllocationFunc(ctx, tx, installment)
	}
	return nil
}

func (m *MockInstallmentRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, installment *domain.Installment) error {
	if m.UpdateBalancesFunc != nil {
		return m.UpdateBalancesFunc(ctx, tx, installment)
	}
	return nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu      sync.RWMutex
	records []*domain.PaymentRecord

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, record *domain.PaymentRecord) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.PaymentRecord, error)
	ListByLoanFunc func(ctx context.Context, loanAccountID string, limit, offset int) ([]*domain.PaymentRecord, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.PaymentRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) ListByLoan(ctx context.Context, loanAccountID string, limit, offset int) ([]*domain.PaymentRecord, error) {
	if m.ListByLoanFunc != nil {
		return m.ListByLoanFunc(ctx, loanAccountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.PaymentRecord
	for _, record := range m.records {
		if record.LoanAccountID == loanAccountID {
			records = append(records, record)
		}
	}
	return records, nil
}

// All returns every stored record.
func (m *MockPaymentRepository) All() []*domain.PaymentRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.PaymentRecord(nil), m.records...)
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var unpublished []*domain.OutboxEvent
	for _, event := range m.events {
		if !event.Published {
			unpublished = append(unpublished, event)
		}
		if len(unpublished) == limit {
			break
		}
	}
	return unpublished, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, event := range m.events {
		if event.ID == id {
			event.Published = true
			event.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	return nil
}

// Events returns every stored event.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + time.Now().UTC().Format("150405.000000") + "-" + string(rune('a'+m.counter%26))
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string
}

// ErrCacheMiss is returned by MockCache.Get for an absent key.
var ErrCacheMiss = errors.New("cache miss")

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (c *MockCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.values[key]; ok {
		return v, nil
	}
	return "", ErrCacheMiss
}

func (c *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *MockCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

// MockAuditRepository is an in-memory mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.Mutex
	logs []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.AuditLog
	for _, l := range m.logs {
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.ResourceType != "" && l.ResourceType != filter.ResourceType {
			continue
		}
		if filter.ResourceID != "" && l.ResourceID != filter.ResourceID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Logs returns a snapshot of recorded audit logs.
func (m *MockAuditRepository) Logs() []*domain.AuditLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.AuditLog(nil), m.logs...)
}
