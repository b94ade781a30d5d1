package response

import "github.com/google/uuid"

type StockSyncResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

type BulkStockSyncResponse struct {
	Synced int `json:"synced"`
}
