package ozonclient

import (
	"context"

	ozondomain "github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

const (
	fboPostingListPath = "/v2/posting/fbo/list"
	fbsPostingListPath = "/v3/posting/fbs/list"
)

func (c *OzonClient) ListFBOPostings(ctx context.Context, creds domain.Credentials, req ozondomain.PostingListRequest) (*ozondomain.FBOPostingListResponse, error) {
	var response ozondomain.FBOPostingListResponse
	if err := c.post(ctx, creds, fboPostingListPath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *OzonClient) ListFBSPostings(ctx context.Context, creds domain.Credentials, req ozondomain.PostingListRequest) (*ozondomain.FBSPostingListResponse, error) {
	var response ozondomain.FBSPostingListResponse
	if err := c.post(ctx, creds, fbsPostingListPath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
