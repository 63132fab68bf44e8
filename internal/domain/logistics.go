package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryType is the Ozon fulfillment model of a posting.
type DeliveryType string

const (
	// DeliveryTypeFBO is fulfillment by Ozon (Ozon-operated warehouse).
	DeliveryTypeFBO DeliveryType = "FBO"
	// DeliveryTypeFBS is fulfillment by seller (seller-operated shipping).
	DeliveryTypeFBS DeliveryType = "FBS"
)

func (t DeliveryType) Valid() bool {
	return t == DeliveryTypeFBO || t == DeliveryTypeFBS
}

// DeliveryStatus is the normalized state of a posting.
type DeliveryStatus string

const (
	DeliveryStatusAwaitingPackaging DeliveryStatus = "awaiting_packaging"
	DeliveryStatusAwaitingDeliver   DeliveryStatus = "awaiting_deliver"
	DeliveryStatusInTransit         DeliveryStatus = "in_transit"
	DeliveryStatusDelivered         DeliveryStatus = "delivered"
	DeliveryStatusCancelled         DeliveryStatus = "cancelled"
	DeliveryStatusReturned          DeliveryStatus = "returned"
)

// LogisticsRecord is a single order with its logistics cost.
type LogisticsRecord struct {
	OrderID      string          `json:"order_id"`
	DeliveryType DeliveryType    `json:"delivery_type"`
	Status       DeliveryStatus  `json:"status"`
	Cost         decimal.Decimal `json:"cost"`
	DeliveryDate *time.Time      `json:"delivery_date"`
	Warehouse    string          `json:"warehouse"`
}

// Validate checks the record invariants: non-negative cost, known fulfillment
// model and no delivery date on orders that are not delivered. A delivered
// order may lack the date when the source does not report it.
func (r LogisticsRecord) Validate() error {
	if r.OrderID == "" {
		return fmt.Errorf("%w: logistics record without order_id", ErrMalformedRecord)
	}
	if !r.DeliveryType.Valid() {
		return fmt.Errorf("%w: order %s has unknown delivery type %q", ErrMalformedRecord, r.OrderID, r.DeliveryType)
	}
	if r.Cost.IsNegative() {
		return fmt.Errorf("%w: order %s has negative cost %s", ErrMalformedRecord, r.OrderID, r.Cost)
	}
	if r.Status != DeliveryStatusDelivered && r.DeliveryDate != nil {
		return fmt.Errorf("%w: order %s has a delivery date with status %s", ErrMalformedRecord, r.OrderID, r.Status)
	}
	return nil
}
