package order

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

var validTransitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusRefunded},
	StatusShipped:   {StatusRefunded},
	StatusCancelled: {},
	StatusRefunded:  {},
}

// stock is handed back when an order leaves the fulfillment pipeline
var statusesRequiringStockRestore = map[Status]bool{
	StatusCancelled: true,
	StatusRefunded:  true,
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// RequiresStockRestore reports whether entering this status must return the
// order's line-item quantities to product stock.
func (s Status) RequiresStockRestore() bool {
	return statusesRequiringStockRestore[s]
}

func (s Status) String() string {
	return string(s)
}
