// Package fakes provides in-memory stand-ins for the persistence ports with
// the same conditional-update semantics as the postgres repositories. The
// unit-of-work fake serializes Within calls the way row locks serialize
// transactions, so concurrency tests over the engines are deterministic.
package fakes

import (
	"context"
	"sync"
	"time"

	"flashmart/internal/domain/coupon"
	"flashmart/internal/domain/delivery"
	"flashmart/internal/domain/order"
	"flashmart/internal/domain/product"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"
	"flashmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponRow struct {
	ID               uuid.UUID
	Code             string
	Discount         coupon.Discount
	MinPurchaseCents int64
	ValidFrom        time.Time
	ValidUntil       time.Time
	TotalLimit       int64
	UsedCount        int64
	IsActive         bool
}

type usageKey struct {
	userID   uuid.UUID
	couponID uuid.UUID
}

// Store holds every table in memory behind one mutex.
type Store struct {
	mu sync.Mutex

	Products map[uuid.UUID]*product.Product
	Stocks   map[uuid.UUID]*product.Stock
	Slots    map[uuid.UUID]*delivery.Slot
	Blocked  map[string]bool // blocked provisioning dates, keyed "2006-01-02"
	Coupons  map[string]*CouponRow
	Usages   map[usageKey]*time.Time
	Orders   map[uuid.UUID]*order.Order
	Items    map[uuid.UUID][]order.Item

	// DecrementLog records the order in which stock rows were decremented,
	// for lock-ordering assertions.
	DecrementLog []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		Products: make(map[uuid.UUID]*product.Product),
		Stocks:   make(map[uuid.UUID]*product.Stock),
		Slots:    make(map[uuid.UUID]*delivery.Slot),
		Blocked:  make(map[string]bool),
		Coupons:  make(map[string]*CouponRow),
		Usages:   make(map[usageKey]*time.Time),
		Orders:   make(map[uuid.UUID]*order.Order),
		Items:    make(map[uuid.UUID][]order.Item),
	}
}

func (s *Store) AddProduct(name string, priceCents, stockQty int64) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	now := time.Now()
	s.Products[id] = &product.Product{
		ID:         id,
		Name:       name,
		PriceCents: priceCents,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.Stocks[id] = &product.Stock{
		ProductID: id,
		Quantity:  stockQty,
		Version:   0,
		UpdatedAt: now,
	}
	return id
}

func (s *Store) AddSlot(startsAt, endsAt time.Time, maxCapacity int64) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	day := startsAt.Truncate(24 * time.Hour)
	s.Slots[id] = &delivery.Slot{
		ID:          id,
		Date:        day,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		MaxCapacity: maxCapacity,
		IsActive:    true,
	}
	return id
}

func (s *Store) AddCoupon(row CouponRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := row
	s.Coupons[row.Code] = &r
}

func (s *Store) StockQuantity(productID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Stocks[productID].Quantity
}

func (s *Store) SlotCount(slotID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Slots[slotID].CurrentCount
}

func (s *Store) CouponUsedCount(code string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Coupons[code].UsedCount
}

// UoW serializes read-write transactions with one mutex, giving the fakes
// the isolation that FOR UPDATE row locks give the real repositories.
type UoW struct {
	mu sync.Mutex
}

func NewUoW() *UoW {
	return &UoW{}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

// --- usecase.StockRepository ---

type StockRepo struct {
	store *Store
}

func NewStockRepo(store *Store) *StockRepo {
	return &StockRepo{store: store}
}

func (r *StockRepo) Get(_ context.Context, _ db.DBTX, productID uuid.UUID) (*product.Stock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stock, ok := r.store.Stocks[productID]
	if !ok {
		return nil, infra.WrapRepoErr("stock not found", nil, infra.KindNotFound)
	}
	copied := *stock
	return &copied, nil
}

func (r *StockRepo) GetForUpdate(ctx context.Context, tx db.DBTX, productID uuid.UUID) (*product.Stock, error) {
	return r.Get(ctx, tx, productID)
}

func (r *StockRepo) DecrementIfAvailable(_ context.Context, _ db.DBTX, productID uuid.UUID, quantity, expectedVersion int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stock, ok := r.store.Stocks[productID]
	if !ok {
		return false, nil
	}
	if stock.Quantity < quantity || stock.Version != expectedVersion {
		return false, nil
	}
	stock.Quantity -= quantity
	stock.Version++
	r.store.DecrementLog = append(r.store.DecrementLog, productID)
	return true, nil
}

func (r *StockRepo) Restore(_ context.Context, _ db.DBTX, productID uuid.UUID, quantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stock, ok := r.store.Stocks[productID]
	if !ok {
		return infra.WrapRepoErr("stock not found", nil, infra.KindNotFound)
	}
	stock.Quantity += quantity
	stock.Version++
	return nil
}

func (r *StockRepo) List(_ context.Context, _ db.DBTX, productIDs []uuid.UUID) ([]product.Stock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []product.Stock
	if len(productIDs) == 0 {
		for _, s := range r.store.Stocks {
			out = append(out, *s)
		}
		return out, nil
	}
	for _, id := range productIDs {
		if s, ok := r.store.Stocks[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

// --- usecase.ProductRepository ---

type ProductRepo struct {
	store *Store
}

func NewProductRepo(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) FindActiveByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*product.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.Products[id]
	if !ok || !p.IsActive {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	copied := *p
	return &copied, nil
}

func (r *ProductRepo) CreateWithStock(_ context.Context, _ db.DBTX, p *product.Product, initialQuantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	copied := *p
	copied.CreatedAt = now
	copied.UpdatedAt = now
	r.store.Products[p.ID] = &copied
	r.store.Stocks[p.ID] = &product.Stock{
		ProductID: p.ID,
		Quantity:  initialQuantity,
		Version:   0,
		UpdatedAt: now,
	}
	return nil
}

// --- usecase.SlotRepository ---

type SlotRepo struct {
	store *Store
}

func NewSlotRepo(store *Store) *SlotRepo {
	return &SlotRepo{store: store}
}

func (r *SlotRepo) Get(_ context.Context, _ db.DBTX, id uuid.UUID) (*delivery.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.Slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	copied := *slot
	return &copied, nil
}

func (r *SlotRepo) GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*delivery.Slot, error) {
	return r.Get(ctx, tx, id)
}

func (r *SlotRepo) IncrementIfBelowCapacity(_ context.Context, _ db.DBTX, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.Slots[id]
	if !ok || slot.CurrentCount >= slot.MaxCapacity {
		return false, nil
	}
	slot.CurrentCount++
	return true, nil
}

func (r *SlotRepo) DecrementIfPositive(_ context.Context, _ db.DBTX, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.Slots[id]
	if !ok || slot.CurrentCount <= 0 {
		return false, nil
	}
	slot.CurrentCount--
	return true, nil
}

func (r *SlotRepo) Deactivate(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.Slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	slot.IsActive = false
	return nil
}

func (r *SlotRepo) GetOrCreate(_ context.Context, _ db.DBTX, slot delivery.Slot) (*delivery.Slot, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.Slots {
		if existing.StartsAt.Equal(slot.StartsAt) && existing.EndsAt.Equal(slot.EndsAt) {
			copied := *existing
			return &copied, false, nil
		}
	}
	created := slot
	r.store.Slots[slot.ID] = &created
	copied := created
	return &copied, true, nil
}

func (r *SlotRepo) HasBlockedException(_ context.Context, _ db.DBTX, date time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.Blocked[date.Format("2006-01-02")], nil
}

// --- usecase.CouponRepository ---

type CouponRepo struct {
	store *Store
}

func NewCouponRepo(store *Store) *CouponRepo {
	return &CouponRepo{store: store}
}

func (r *CouponRepo) FindByCode(_ context.Context, _ db.DBTX, code string) (*coupon.Coupon, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.Coupons[code]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}

	couponCode, err := coupon.NewCouponCode(row.Code)
	if err != nil {
		return nil, err
	}
	return coupon.ReconstructCoupon(
		row.ID, couponCode, row.Discount, row.MinPurchaseCents,
		row.ValidFrom, row.ValidUntil, row.TotalLimit, row.UsedCount,
		row.IsActive, time.Time{}, time.Time{},
	), nil
}

func (r *CouponRepo) IncrementUsedCount(_ context.Context, _ db.DBTX, couponID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, row := range r.store.Coupons {
		if row.ID != couponID {
			continue
		}
		if row.TotalLimit > 0 && row.UsedCount >= row.TotalLimit {
			return false, nil
		}
		row.UsedCount++
		return true, nil
	}
	return false, nil
}

func (r *CouponRepo) HasUsage(_ context.Context, _ db.DBTX, userID, couponID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	usedAt, ok := r.store.Usages[usageKey{userID: userID, couponID: couponID}]
	return ok && usedAt != nil, nil
}

func (r *CouponRepo) MarkUsed(_ context.Context, _ db.DBTX, userID, couponID uuid.UUID, usedAt time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := usageKey{userID: userID, couponID: couponID}
	if existing, ok := r.store.Usages[key]; ok && existing != nil {
		return false, nil
	}
	t := usedAt
	r.store.Usages[key] = &t
	return true, nil
}

// --- usecase.OrderRepository ---

type OrderRepo struct {
	store *Store
}

func NewOrderRepo(store *Store) *OrderRepo {
	return &OrderRepo{store: store}
}

func (r *OrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order, items []order.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *o
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.store.Orders[o.ID] = &copied
	r.store.Items[o.ID] = append([]order.Item(nil), items...)
	return nil
}

func (r *OrderRepo) GetForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.Orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	copied := *o
	return &copied, nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status order.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.Orders[id]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func (r *OrderRepo) SetPaid(_ context.Context, _ db.DBTX, id uuid.UUID, paymentID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.Orders[id]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	o.Status = order.StatusPaid
	pid := paymentID
	o.PaymentID = &pid
	o.UpdatedAt = time.Now()
	return nil
}

func (r *OrderRepo) ItemsByOrderID(_ context.Context, _ db.DBTX, orderID uuid.UUID) ([]order.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]order.Item(nil), r.store.Items[orderID]...), nil
}

// --- queries.OrderQueries ---

type OrderReads struct {
	store *Store
}

func NewOrderReads(store *Store) *OrderReads {
	return &OrderReads{store: store}
}

func (q *OrderReads) GetByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	o, ok := q.store.Orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}

	view := &queries.OrderView{
		ID:            o.ID,
		UserID:        o.UserID,
		Status:        o.Status.String(),
		SubtotalCents: o.SubtotalCents,
		DiscountCents: o.DiscountCents,
		TotalCents:    o.TotalCents,
		PaymentID:     o.PaymentID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.CouponID != nil {
		for code, row := range q.store.Coupons {
			if row.ID == *o.CouponID {
				c := code
				view.CouponCode = &c
			}
		}
	}
	for _, item := range q.store.Items[id] {
		name := ""
		if p, ok := q.store.Products[item.ProductID]; ok {
			name = p.Name
		}
		view.Items = append(view.Items, queries.OrderItemView{
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCentsAtPurchase,
		})
	}
	return view, nil
}

func (q *OrderReads) ListByUser(_ context.Context, userID uuid.UUID) ([]queries.OrderListItem, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	var out []queries.OrderListItem
	for _, o := range q.store.Orders {
		if o.UserID != userID {
			continue
		}
		out = append(out, queries.OrderListItem{
			ID:         o.ID,
			Status:     o.Status.String(),
			TotalCents: o.TotalCents,
			ItemCount:  int64(len(q.store.Items[o.ID])),
			CreatedAt:  o.CreatedAt,
		})
	}
	return out, nil
}

// --- usecase.CounterCache ---

// Cache is an in-memory counter cache. TTLs are recorded but never expire.
type Cache struct {
	mu     sync.Mutex
	values map[string]int64

	// Fail makes every call return this error, for degraded-cache tests.
	Fail error
}

func NewCache() *Cache {
	return &Cache{values: make(map[string]int64)}
}

func (c *Cache) Get(_ context.Context, key string) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return 0, false, c.Fail
	}
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *Cache) Set(_ context.Context, key string, value int64, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return c.Fail
	}
	c.values[key] = value
	return nil
}

func (c *Cache) IncrBy(_ context.Context, key string, n int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return 0, c.Fail
	}
	c.values[key] += n
	return c.values[key], nil
}

func (c *Cache) DecrBy(_ context.Context, key string, n int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return 0, c.Fail
	}
	c.values[key] -= n
	return c.values[key], nil
}

func (c *Cache) SetNX(_ context.Context, key string, value int64, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail != nil {
		return false, c.Fail
	}
	if _, ok := c.values[key]; ok {
		return false, nil
	}
	c.values[key] = value
	return true, nil
}

func (c *Cache) Value(key string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
}
