package ozon

import (
	"strconv"

	ozondomain "github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

var statusMap = map[string]domain.DeliveryStatus{
	ozondomain.PostingStatusAwaitingRegistration:  domain.DeliveryStatusAwaitingPackaging,
	ozondomain.PostingStatusAcceptanceInProgress:  domain.DeliveryStatusAwaitingPackaging,
	ozondomain.PostingStatusAwaitingApprove:       domain.DeliveryStatusAwaitingPackaging,
	ozondomain.PostingStatusAwaitingPackaging:     domain.DeliveryStatusAwaitingPackaging,
	ozondomain.PostingStatusAwaitingDeliver:       domain.DeliveryStatusAwaitingDeliver,
	ozondomain.PostingStatusDelivering:            domain.DeliveryStatusInTransit,
	ozondomain.PostingStatusDriverPickup:          domain.DeliveryStatusInTransit,
	ozondomain.PostingStatusSentBySeller:          domain.DeliveryStatusInTransit,
	ozondomain.PostingStatusArbitration:           domain.DeliveryStatusInTransit,
	ozondomain.PostingStatusClientArbitration:     domain.DeliveryStatusInTransit,
	ozondomain.PostingStatusDelivered:             domain.DeliveryStatusDelivered,
	ozondomain.PostingStatusCancelled:             domain.DeliveryStatusCancelled,
	ozondomain.PostingStatusNotAccepted:           domain.DeliveryStatusCancelled,
	ozondomain.PostingStatusReturnedToSeller:      domain.DeliveryStatusReturned,
	ozondomain.PostingStatusReturnArrivedToSeller: domain.DeliveryStatusReturned,
}

// mapStatus normalizes a posting status. Unknown statuses are kept verbatim.
func mapStatus(raw string) domain.DeliveryStatus {
	if status, ok := statusMap[raw]; ok {
		return status
	}
	return domain.DeliveryStatus(raw)
}

func orderID(id int64, postingNumber string) string {
	if id != 0 {
		return strconv.FormatInt(id, 10)
	}
	return postingNumber
}

// fboRecord and fbsRecord leave DeliveryDate empty: the posting lists carry
// no delivered-at timestamp (in_process_at, shipment_date and delivering_date
// all precede delivery).
func fboRecord(p ozondomain.FBOPosting) domain.LogisticsRecord {
	status := mapStatus(p.Status)

	warehouse := ""
	if p.AnalyticsData != nil {
		warehouse = p.AnalyticsData.WarehouseName
	}

	return domain.LogisticsRecord{
		OrderID:      orderID(p.OrderID, p.PostingNumber),
		DeliveryType: domain.DeliveryTypeFBO,
		Status:       status,
		Cost:         p.FinancialData.LogisticsCost(),
		Warehouse:    warehouse,
	}
}

func fbsRecord(p ozondomain.FBSPosting) domain.LogisticsRecord {
	status := mapStatus(p.Status)

	warehouse := ""
	switch {
	case p.DeliveryMethod != nil && p.DeliveryMethod.Warehouse != "":
		warehouse = p.DeliveryMethod.Warehouse
	case p.AnalyticsData != nil:
		warehouse = p.AnalyticsData.WarehouseName
	}

	return domain.LogisticsRecord{
		OrderID:      orderID(p.OrderID, p.PostingNumber),
		DeliveryType: domain.DeliveryTypeFBS,
		Status:       status,
		Cost:         p.FinancialData.LogisticsCost(),
		Warehouse:    warehouse,
	}
}

func productRecord(info ozondomain.ProductInfo, categories map[int64]string) domain.ProductRecord {
	category, ok := categories[info.DescriptionCategoryID]
	if !ok && info.DescriptionCategoryID != 0 {
		category = strconv.FormatInt(info.DescriptionCategoryID, 10)
	}

	return domain.ProductRecord{
		SKU:        info.OfferID,
		Name:       info.Name,
		Price:      info.Price,
		StockCount: info.Stocks.Available(),
		Category:   category,
	}
}
