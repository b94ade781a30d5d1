package shared

import (
	"context"

	"flashmart/internal/infra/db"
)

// UnitOfWork scopes repository calls to a durable-store transaction. Within
// runs fn inside one transaction: every row lock taken through tx is held
// until commit or rollback, which is what serializes concurrent mutators of
// the same counter row.
type UnitOfWork interface {
	// Within: full read-write transaction, retried on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}
