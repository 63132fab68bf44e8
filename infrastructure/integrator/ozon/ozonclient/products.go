package ozonclient

import (
	"context"

	ozondomain "github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

const (
	productListPath  = "/v3/product/list"
	productInfoPath  = "/v3/product/info/list"
	categoryTreePath = "/v1/description-category/tree"
	rolesPath        = "/v1/roles"
)

func (c *OzonClient) ListProducts(ctx context.Context, creds domain.Credentials, req ozondomain.ProductListRequest) (*ozondomain.ProductListResponse, error) {
	var response ozondomain.ProductListResponse
	if err := c.post(ctx, creds, productListPath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *OzonClient) GetProductInfo(ctx context.Context, creds domain.Credentials, productIDs []int64) (*ozondomain.ProductInfoResponse, error) {
	var response ozondomain.ProductInfoResponse
	req := ozondomain.ProductInfoRequest{ProductID: productIDs}
	if err := c.post(ctx, creds, productInfoPath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *OzonClient) GetCategoryTree(ctx context.Context, creds domain.Credentials) (*ozondomain.CategoryTreeResponse, error) {
	var response ozondomain.CategoryTreeResponse
	req := ozondomain.CategoryTreeRequest{Language: "DEFAULT"}
	if err := c.post(ctx, creds, categoryTreePath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ListRoles returns the roles granted to the api key. It is the cheapest call
// that fails for invalid credentials.
func (c *OzonClient) ListRoles(ctx context.Context, creds domain.Credentials) (*ozondomain.RolesResponse, error) {
	var response ozondomain.RolesResponse
	if err := c.post(ctx, creds, rolesPath, struct{}{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
