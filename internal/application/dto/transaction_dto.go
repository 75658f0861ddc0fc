package dto

import (
	"time"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// TransactionRequest parámetros de GET /api/transactions.
type TransactionRequest struct {
	Stores         []string
	StartDate      string
	EndDate        string
	OnlySuspicious bool
	Page           PageRequest
}

// TransactionDTO pedido individual con la marca de posible duplicado.
type TransactionDTO struct {
	OrderID            string        `json:"order_id"`
	StoreName          string        `json:"store_name"`
	PhotoDetailType    string        `json:"photo_detail_type"`
	TotalAmount        entity.Amount `json:"total_amount"`
	CreatedAt          time.Time     `json:"created_at"`
	SuspectedDuplicate bool          `json:"suspected_duplicate"`
}

// TransactionListDTO respuesta paginada de GET /api/transactions.
type TransactionListDTO struct {
	Items          []TransactionDTO `json:"items"`
	SuspectedCount int              `json:"suspected_count"`
	Page           PageResponse     `json:"page"`
}
