package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"medistore/m/domain"
	"medistore/m/internal/billing"
)

// MemoryStore keeps all records in process memory behind a RWMutex. It is
// the default backend (the app ships with demo data) and the test double
// for handler tests.
type MemoryStore struct {
	mu           sync.RWMutex
	medicines    map[int64]domain.Medicine
	transactions map[int64]domain.Transaction
	medicineSeq  int64
	txSeq        int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		medicines:    make(map[int64]domain.Medicine),
		transactions: make(map[int64]domain.Transaction),
	}
}

func (s *MemoryStore) ListMedicines(_ context.Context) ([]domain.Medicine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	medicines := make([]domain.Medicine, 0, len(s.medicines))
	for _, m := range s.medicines {
		medicines = append(medicines, m)
	}
	sort.Slice(medicines, func(i, j int) bool { return medicines[i].ID < medicines[j].ID })
	return medicines, nil
}

func (s *MemoryStore) GetMedicine(_ context.Context, id int64) (domain.Medicine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.medicines[id]
	if !ok {
		return domain.Medicine{}, ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) SaveMedicine(_ context.Context, m domain.Medicine) (domain.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	if m.ID == 0 {
		s.medicineSeq++
		m.ID = s.medicineSeq
		m.CreatedAt = now
	} else if _, ok := s.medicines[m.ID]; !ok {
		return domain.Medicine{}, ErrNotFound
	}
	m.UpdatedAt = now
	s.medicines[m.ID] = m
	return m, nil
}

func (s *MemoryStore) DeleteMedicine(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.medicines[id]; !ok {
		return ErrNotFound
	}
	delete(s.medicines, id)
	return nil
}

func (s *MemoryStore) ListTransactions(_ context.Context, filter TransactionFilter) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		transactions = append(transactions, cloneTransaction(t))
	}
	transactions = billing.Filter(transactions, filter.FinancialYear, filter.From, filter.To)
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].Date != transactions[j].Date {
			return transactions[i].Date < transactions[j].Date
		}
		return transactions[i].ID < transactions[j].ID
	})
	return transactions, nil
}

func (s *MemoryStore) GetTransaction(_ context.Context, id int64) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions[id]
	if !ok {
		return domain.Transaction{}, ErrNotFound
	}
	return cloneTransaction(t), nil
}

func (s *MemoryStore) SaveTransaction(_ context.Context, t domain.Transaction) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		s.txSeq++
		t.ID = s.txSeq
		t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	} else if _, ok := s.transactions[t.ID]; !ok {
		return domain.Transaction{}, ErrNotFound
	}
	s.transactions[t.ID] = cloneTransaction(t)
	return t, nil
}

// cloneTransaction copies the item slice so callers cannot mutate stored
// records through the shared backing array.
func cloneTransaction(t domain.Transaction) domain.Transaction {
	items := make([]domain.LineItem, len(t.Items))
	copy(items, t.Items)
	t.Items = items
	return t
}
