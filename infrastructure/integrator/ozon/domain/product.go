package ozondomain

import "github.com/shopspring/decimal"

type ProductListRequest struct {
	Filter ProductListFilter `json:"filter"`
	LastID string            `json:"last_id"`
	Limit  int               `json:"limit"`
}

type ProductListFilter struct {
	Visibility string `json:"visibility"`
}

type ProductListResponse struct {
	Result ProductListResult `json:"result"`
}

type ProductListResult struct {
	Items  []ProductListItem `json:"items"`
	Total  int               `json:"total"`
	LastID string            `json:"last_id"`
}

type ProductListItem struct {
	ProductID int64  `json:"product_id"`
	OfferID   string `json:"offer_id"`
	Archived  bool   `json:"archived"`
}

type ProductInfoRequest struct {
	ProductID []int64 `json:"product_id"`
}

type ProductInfoResponse struct {
	Items []ProductInfo `json:"items"`
}

type ProductInfo struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	OfferID               string          `json:"offer_id"`
	Price                 decimal.Decimal `json:"price"`
	CurrencyCode          string          `json:"currency_code"`
	DescriptionCategoryID int64           `json:"description_category_id"`
	TypeID                int64           `json:"type_id"`
	Stocks                ProductStocks   `json:"stocks"`
}

type ProductStocks struct {
	HasStock bool           `json:"has_stock"`
	Stocks   []ProductStock `json:"stocks"`
}

type ProductStock struct {
	Present  int    `json:"present"`
	Reserved int    `json:"reserved"`
	SKU      int64  `json:"sku"`
	Source   string `json:"source"`
}

// Available is the stock present across all fulfillment sources.
func (s ProductStocks) Available() int {
	total := 0
	for _, st := range s.Stocks {
		total += st.Present
	}
	return total
}

type CategoryTreeRequest struct {
	Language string `json:"language"`
}

type CategoryTreeResponse struct {
	Result []CategoryNode `json:"result"`
}

type CategoryNode struct {
	DescriptionCategoryID int64          `json:"description_category_id"`
	CategoryName          string         `json:"category_name"`
	Disabled              bool           `json:"disabled"`
	TypeID                int64          `json:"type_id"`
	TypeName              string         `json:"type_name"`
	Children              []CategoryNode `json:"children"`
}

// CategoryNames flattens the tree into description_category_id -> name.
func (r CategoryTreeResponse) CategoryNames() map[int64]string {
	names := make(map[int64]string)
	var walk func(nodes []CategoryNode)
	walk = func(nodes []CategoryNode) {
		for _, n := range nodes {
			if n.DescriptionCategoryID != 0 && n.CategoryName != "" {
				names[n.DescriptionCategoryID] = n.CategoryName
			}
			walk(n.Children)
		}
	}
	walk(r.Result)
	return names
}
