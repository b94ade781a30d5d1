package usecase

import (
	"context"
	"log/slog"
	"sort"

	"flashmart/internal/domain/coupon"
	"flashmart/internal/domain/order"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"
	"flashmart/internal/pkg/clock"
	"flashmart/internal/pkg/config"
	"flashmart/internal/pkg/errs"
	"flashmart/internal/usecase/queries"
	"flashmart/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlaceOrderInput struct {
	Items      []order.LineItemInput
	CouponCode string // empty means no coupon
}

// OrderCommands orchestrates order placement and lifecycle over the stock
// and coupon engines. All durable writes of one placement share a single
// transaction; cache fast-path decrements taken along the way are rolled
// back if that transaction aborts.
type OrderCommands interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, target order.Status) error
	Cancel(ctx context.Context, orderID uuid.UUID) error
	MarkPaid(ctx context.Context, orderID uuid.UUID, paymentID string) error
}

type orderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	stockCmds   StockCommands
	couponCmds  CouponCommands
	orderReads  queries.OrderQueries
	cache       CounterCache
	uow         shared.UnitOfWork
	clk         clock.Clock
	cfg         config.InventoryConfig
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	stockCmds StockCommands,
	couponCmds CouponCommands,
	orderReads queries.OrderQueries,
	cache CounterCache,
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.InventoryConfig,
) OrderCommands {
	return &orderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stockCmds:   stockCmds,
		couponCmds:  couponCmds,
		orderReads:  orderReads,
		cache:       cache,
		uow:         uow,
		clk:         clk,
		cfg:         cfg,
	}
}

func (u *orderUseCase) PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*queries.OrderView, error) {
	if len(input.Items) == 0 {
		return nil, errs.Mark(errs.New("place order: no items"), ErrEmptyOrder)
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errs.Mark(
				errs.Newf("place order: quantity %d for product %s", item.Quantity, item.ProductID),
				ErrInvalidQuantity)
		}
	}

	if err := u.checkRateLimit(ctx, userID); err != nil {
		return nil, err
	}

	// Row locks across concurrent orders are acquired in the same global
	// order, so two orders touching the same products cannot deadlock.
	items := make([]order.LineItemInput, len(input.Items))
	copy(items, input.Items)
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID.String() < items[j].ProductID.String()
	})

	appliedCoupon, err := u.validateCoupon(ctx, userID, input.CouponCode, items)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New()
	var rollbacks []CacheRollback

	err = u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var subtotal int64
		orderItems := make([]order.Item, 0, len(items))

		for _, item := range items {
			p, err := u.productRepo.FindActiveByID(ctx, tx, item.ProductID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrProductNotFound)
				}
				return err
			}

			rollback, err := u.stockCmds.DecreaseWithin(ctx, tx, item.ProductID, item.Quantity)
			if rollback != nil {
				rollbacks = append(rollbacks, rollback)
			}
			if err != nil {
				return err
			}

			subtotal += p.PriceCents * item.Quantity
			orderItems = append(orderItems, order.Item{
				ID:                   uuid.New(),
				OrderID:              orderID,
				ProductID:            item.ProductID,
				Quantity:             item.Quantity,
				PriceCentsAtPurchase: p.PriceCents,
			})
		}

		var discount int64
		var couponID *uuid.UUID
		if appliedCoupon != nil {
			d, err := appliedCoupon.CalculateDiscount(subtotal)
			if err != nil {
				return errs.Mark(err, ErrMinimumPurchaseNotMet)
			}
			discount = d
			id := appliedCoupon.ID()
			couponID = &id
		}

		total := subtotal - discount
		if total < 0 {
			total = 0
		}

		o := &order.Order{
			ID:            orderID,
			UserID:        userID,
			Status:        order.StatusPending,
			SubtotalCents: subtotal,
			DiscountCents: discount,
			TotalCents:    total,
			CouponID:      couponID,
		}
		if err := u.orderRepo.Create(ctx, tx, o, orderItems); err != nil {
			return err
		}

		if appliedCoupon != nil {
			if err := u.couponCmds.ApplyWithin(ctx, tx, userID, appliedCoupon); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		for _, rollback := range rollbacks {
			rollback(ctx)
		}
		return nil, err
	}

	slog.Info("order placed",
		"order_id", orderID.String(), "user_id", userID.String(), "items", len(items))
	return u.orderReads.GetByID(ctx, orderID)
}

// checkRateLimit allows one placement per user per window. Cache failures
// let the request through: the limiter protects throughput, not correctness.
func (u *orderUseCase) checkRateLimit(ctx context.Context, userID uuid.UUID) error {
	acquired, err := u.cache.SetNX(ctx, orderRateLimitKey(userID), 1, u.cfg.OrderRateLimit)
	if err != nil {
		slog.Warn("order rate limiter unavailable",
			"user_id", userID.String(), "error", err.Error())
		return nil
	}
	if !acquired {
		return errs.Mark(
			errs.Newf("user %s placing orders too fast", userID), ErrRateLimitExceeded)
	}
	return nil
}

// validateCoupon runs the full coupon validation before the placement
// transaction, using a subtotal estimated from current prices. The discount
// is recomputed inside the transaction from the captured prices.
func (u *orderUseCase) validateCoupon(ctx context.Context, userID uuid.UUID, code string, items []order.LineItemInput) (*coupon.Coupon, error) {
	if code == "" {
		return nil, nil
	}

	var subtotal int64
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		for _, item := range items {
			p, err := u.productRepo.FindActiveByID(ctx, dbtx, item.ProductID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrProductNotFound)
				}
				return err
			}
			subtotal += p.PriceCents * item.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c, _, err := u.couponCmds.Validate(ctx, userID, code, subtotal)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateStatus transitions the order through its lifecycle. Transitions into
// CANCELLED or REFUNDED return every line-item quantity to stock in the same
// transaction; cache snapshots are resynced after commit.
func (u *orderUseCase) UpdateStatus(ctx context.Context, orderID uuid.UUID, target order.Status) error {
	if !target.IsValid() {
		return errs.Mark(
			errs.Newf("unknown order status %q", target), ErrInvalidStatusTransition)
	}

	var restoredProducts []uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := u.orderRepo.GetForUpdate(ctx, tx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}

		if !o.Status.CanTransitionTo(target) {
			return errs.Mark(
				errs.Newf("order %s: %s -> %s", orderID, o.Status, target),
				ErrInvalidStatusTransition)
		}

		if err := u.orderRepo.UpdateStatus(ctx, tx, orderID, target); err != nil {
			return err
		}

		if target.RequiresStockRestore() {
			items, err := u.orderRepo.ItemsByOrderID(ctx, tx, orderID)
			if err != nil {
				return err
			}
			for _, item := range items {
				if err := u.stockCmds.RestoreWithin(ctx, tx, item.ProductID, item.Quantity); err != nil {
					return err
				}
				restoredProducts = append(restoredProducts, item.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, productID := range restoredProducts {
		if _, err := u.stockCmds.SyncToCache(ctx, productID); err != nil {
			slog.Warn("stock cache resync failed after restore",
				"product_id", productID.String(), "error", err.Error())
		}
	}

	slog.Info("order status updated", "order_id", orderID.String(), "status", target.String())
	return nil
}

func (u *orderUseCase) Cancel(ctx context.Context, orderID uuid.UUID) error {
	return u.UpdateStatus(ctx, orderID, order.StatusCancelled)
}

// MarkPaid records the payment reference while moving PENDING to PAID.
func (u *orderUseCase) MarkPaid(ctx context.Context, orderID uuid.UUID, paymentID string) error {
	if paymentID == "" {
		return errs.New("mark paid: payment id required")
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := u.orderRepo.GetForUpdate(ctx, tx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}
		if !o.Status.CanTransitionTo(order.StatusPaid) {
			return errs.Mark(
				errs.Newf("order %s: %s -> %s", orderID, o.Status, order.StatusPaid),
				ErrInvalidStatusTransition)
		}
		return u.orderRepo.SetPaid(ctx, tx, orderID, paymentID)
	})
	if err != nil {
		return err
	}

	slog.Info("order paid", "order_id", orderID.String(), "payment_id", paymentID)
	return nil
}
