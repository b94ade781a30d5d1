package usecase

import (
	"context"
	"time"

	"flashmart/internal/domain/coupon"
	"flashmart/internal/domain/delivery"
	"flashmart/internal/domain/order"
	"flashmart/internal/domain/product"
	"flashmart/internal/infra/db"

	"github.com/google/uuid"
)

// Ports consumed by the engines. Implementations live in internal/infra;
// tests substitute mocks or in-memory fakes.

type StockRepository interface {
	Get(ctx context.Context, dbtx db.DBTX, productID uuid.UUID) (*product.Stock, error)
	GetForUpdate(ctx context.Context, tx db.DBTX, productID uuid.UUID) (*product.Stock, error)
	DecrementIfAvailable(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity, expectedVersion int64) (bool, error)
	Restore(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, quantity int64) error
	List(ctx context.Context, dbtx db.DBTX, productIDs []uuid.UUID) ([]product.Stock, error)
}

type ProductRepository interface {
	FindActiveByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*product.Product, error)
	CreateWithStock(ctx context.Context, tx db.DBTX, p *product.Product, initialQuantity int64) error
}

type SlotRepository interface {
	Get(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*delivery.Slot, error)
	GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*delivery.Slot, error)
	IncrementIfBelowCapacity(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
	DecrementIfPositive(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
	Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	GetOrCreate(ctx context.Context, dbtx db.DBTX, slot delivery.Slot) (*delivery.Slot, bool, error)
	HasBlockedException(ctx context.Context, dbtx db.DBTX, date time.Time) (bool, error)
}

type CouponRepository interface {
	FindByCode(ctx context.Context, dbtx db.DBTX, code string) (*coupon.Coupon, error)
	IncrementUsedCount(ctx context.Context, tx db.DBTX, couponID uuid.UUID) (bool, error)
	HasUsage(ctx context.Context, dbtx db.DBTX, userID, couponID uuid.UUID) (bool, error)
	MarkUsed(ctx context.Context, tx db.DBTX, userID, couponID uuid.UUID, usedAt time.Time) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order, items []order.Item) error
	GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status) error
	SetPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, paymentID string) error
	ItemsByOrderID(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]order.Item, error)
}

// CounterCache is the advisory fast-path store. It is never ground truth:
// every method may fail without affecting correctness of the durable path.
type CounterCache interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, value int64, ttl time.Duration) error
	IncrBy(ctx context.Context, key string, n int64) (int64, error)
	DecrBy(ctx context.Context, key string, n int64) (int64, error)
	SetNX(ctx context.Context, key string, value int64, ttl time.Duration) (bool, error)
}

func stockCacheKey(productID uuid.UUID) string {
	return "stock:" + productID.String()
}

func couponQuotaCacheKey(code string) string {
	return "coupon_quota:" + code
}

func orderRateLimitKey(userID uuid.UUID) string {
	return "rate_limit:order:" + userID.String()
}
