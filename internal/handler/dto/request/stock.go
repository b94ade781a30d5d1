package request

import "github.com/google/uuid"

type BulkSyncStockRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids,omitempty"` // empty syncs every stock row
}
