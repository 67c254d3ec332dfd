// Package store abstracts the record source behind a small repository
// interface so classification and aggregation stay testable without I/O.
package store

import (
	"context"
	"errors"
	"time"

	"medistore/m/domain"
)

// ErrNotFound is returned for unknown medicine or transaction ids.
var ErrNotFound = errors.New("record not found")

// TransactionFilter narrows ListTransactions. FinancialYear matches the
// label exactly; zero From/To leave the range open on that side.
type TransactionFilter struct {
	FinancialYear string
	From          time.Time
	To            time.Time
}

// Repository is the record source for medicines and transactions. Derived
// medicine flags and transaction aggregates are never the repository's
// concern: flags are computed on read by the caller, aggregates are
// computed before save.
type Repository interface {
	ListMedicines(ctx context.Context) ([]domain.Medicine, error)
	GetMedicine(ctx context.Context, id int64) (domain.Medicine, error)
	SaveMedicine(ctx context.Context, m domain.Medicine) (domain.Medicine, error)
	DeleteMedicine(ctx context.Context, id int64) error

	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (domain.Transaction, error)
	SaveTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
}
