package ozondomain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting statuses returned by the FBO and FBS lists
const (
	PostingStatusAwaitingRegistration  = "awaiting_registration"
	PostingStatusAcceptanceInProgress  = "acceptance_in_progress"
	PostingStatusAwaitingApprove       = "awaiting_approve"
	PostingStatusAwaitingPackaging     = "awaiting_packaging"
	PostingStatusAwaitingDeliver       = "awaiting_deliver"
	PostingStatusArbitration           = "arbitration"
	PostingStatusClientArbitration     = "client_arbitration"
	PostingStatusDelivering            = "delivering"
	PostingStatusDriverPickup          = "driver_pickup"
	PostingStatusSentBySeller          = "sent_by_seller"
	PostingStatusDelivered             = "delivered"
	PostingStatusCancelled             = "cancelled"
	PostingStatusNotAccepted           = "not_accepted"
	PostingStatusReturnedToSeller      = "returned_to_seller"
	PostingStatusReturnArrivedToSeller = "return_arrived_to_seller"
)

type PostingListFilter struct {
	Since  time.Time `json:"since"`
	To     time.Time `json:"to"`
	Status string    `json:"status,omitempty"`
}

type PostingWith struct {
	AnalyticsData bool `json:"analytics_data"`
	FinancialData bool `json:"financial_data"`
}

type PostingListRequest struct {
	Dir    string            `json:"dir"`
	Filter PostingListFilter `json:"filter"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	With   PostingWith       `json:"with"`
}

type FBOPostingListResponse struct {
	Result []FBOPosting `json:"result"`
}

type FBSPostingListResponse struct {
	Result FBSPostingListResult `json:"result"`
}

type FBSPostingListResult struct {
	Postings []FBSPosting `json:"postings"`
	HasNext  bool         `json:"has_next"`
}

type FBOPosting struct {
	OrderID       int64             `json:"order_id"`
	OrderNumber   string            `json:"order_number"`
	PostingNumber string            `json:"posting_number"`
	Status        string            `json:"status"`
	CreatedAt     *time.Time        `json:"created_at"`
	InProcessAt   *time.Time        `json:"in_process_at"`
	AnalyticsData *FBOAnalyticsData `json:"analytics_data"`
	FinancialData *FinancialData    `json:"financial_data"`
}

type FBOAnalyticsData struct {
	City          string `json:"city"`
	DeliveryType  string `json:"delivery_type"`
	IsPremium     bool   `json:"is_premium"`
	PaymentType   string `json:"payment_type_group_name"`
	Region        string `json:"region"`
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
}

type FBSPosting struct {
	OrderID        int64             `json:"order_id"`
	OrderNumber    string            `json:"order_number"`
	PostingNumber  string            `json:"posting_number"`
	Status         string            `json:"status"`
	InProcessAt    *time.Time        `json:"in_process_at"`
	ShipmentDate   *time.Time        `json:"shipment_date"`
	DeliveringDate *time.Time        `json:"delivering_date"`
	DeliveryMethod *DeliveryMethod   `json:"delivery_method"`
	AnalyticsData  *FBSAnalyticsData `json:"analytics_data"`
	FinancialData  *FinancialData    `json:"financial_data"`
}

type DeliveryMethod struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	TPLProvider   string `json:"tpl_provider"`
	Warehouse     string `json:"warehouse"`
	WarehouseID   int64  `json:"warehouse_id"`
	TPLProviderID int64  `json:"tpl_provider_id"`
}

type FBSAnalyticsData struct {
	City          string `json:"city"`
	DeliveryType  string `json:"delivery_type"`
	Region        string `json:"region"`
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse"`
}

type FinancialData struct {
	Products        []FinancialProduct `json:"products"`
	PostingServices *ItemServices      `json:"posting_services"`
}

type FinancialProduct struct {
	ProductID    int64           `json:"product_id"`
	Price        decimal.Decimal `json:"price"`
	Payout       decimal.Decimal `json:"payout"`
	Quantity     int             `json:"quantity"`
	ItemServices *ItemServices   `json:"item_services"`
}

// ItemServices are the marketplace charges for a posting item. Ozon reports
// charges as negative amounts.
type ItemServices struct {
	Fulfillment                decimal.Decimal `json:"marketplace_service_item_fulfillment"`
	Pickup                     decimal.Decimal `json:"marketplace_service_item_pickup"`
	DropoffPVZ                 decimal.Decimal `json:"marketplace_service_item_dropoff_pvz"`
	DropoffSC                  decimal.Decimal `json:"marketplace_service_item_dropoff_sc"`
	DropoffFF                  decimal.Decimal `json:"marketplace_service_item_dropoff_ff"`
	DirectFlowTrans            decimal.Decimal `json:"marketplace_service_item_direct_flow_trans"`
	ReturnFlowTrans            decimal.Decimal `json:"marketplace_service_item_return_flow_trans"`
	DelivToCustomer            decimal.Decimal `json:"marketplace_service_item_deliv_to_customer"`
	ReturnNotDelivToCustomer   decimal.Decimal `json:"marketplace_service_item_return_not_deliv_to_customer"`
	ReturnPartGoodsCustomer    decimal.Decimal `json:"marketplace_service_item_return_part_goods_customer"`
	ReturnAfterDelivToCustomer decimal.Decimal `json:"marketplace_service_item_return_after_deliv_to_customer"`
}

// Total is the absolute amount charged for the listed services.
func (s *ItemServices) Total() decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	sum := decimal.Sum(
		s.Fulfillment,
		s.Pickup,
		s.DropoffPVZ,
		s.DropoffSC,
		s.DropoffFF,
		s.DirectFlowTrans,
		s.ReturnFlowTrans,
		s.DelivToCustomer,
		s.ReturnNotDelivToCustomer,
		s.ReturnPartGoodsCustomer,
		s.ReturnAfterDelivToCustomer,
	)
	return sum.Abs()
}

// LogisticsCost sums the item and posting level charges of a posting.
func (f *FinancialData) LogisticsCost() decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	total := f.PostingServices.Total()
	for _, p := range f.Products {
		total = total.Add(p.ItemServices.Total())
	}
	return total
}
