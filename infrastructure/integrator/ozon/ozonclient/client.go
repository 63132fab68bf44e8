package ozonclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	ozondomain "github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMalformedResponse = errors.New("malformed response")

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

// Client is the subset of the Ozon Seller API used by the reports. Every call
// is authorized with the credentials it receives.
type Client interface {
	GetAnalyticsData(ctx context.Context, creds domain.Credentials, req ozondomain.AnalyticsDataRequest) (*ozondomain.AnalyticsDataResponse, error)
	GetAverageDeliveryTime(ctx context.Context, creds domain.Credentials) (*ozondomain.AverageDeliveryTimeSummaryResponse, error)
	ListFBOPostings(ctx context.Context, creds domain.Credentials, req ozondomain.PostingListRequest) (*ozondomain.FBOPostingListResponse, error)
	ListFBSPostings(ctx context.Context, creds domain.Credentials, req ozondomain.PostingListRequest) (*ozondomain.FBSPostingListResponse, error)
	ListProducts(ctx context.Context, creds domain.Credentials, req ozondomain.ProductListRequest) (*ozondomain.ProductListResponse, error)
	GetProductInfo(ctx context.Context, creds domain.Credentials, productIDs []int64) (*ozondomain.ProductInfoResponse, error)
	GetCategoryTree(ctx context.Context, creds domain.Credentials) (*ozondomain.CategoryTreeResponse, error)
	ListRoles(ctx context.Context, creds domain.Credentials) (*ozondomain.RolesResponse, error)
}

type OzonClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OzonClient{
		httpClient: &http.Client{},
		config:     cfg,
	}
}

// post sends a JSON request and decodes the answer into out. Rate limits,
// 5xx answers and transport failures are retried with exponential backoff.
func (c *OzonClient) post(ctx context.Context, creds domain.Credentials, endpoint string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "ozon %s: error encoding request", endpoint)
	}

	backoff := c.config.Ozon.RetryBackoff
	var lastErr error
	for attempt := 0; attempt <= c.config.Ozon.MaxRetries; attempt++ {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"attempt":  attempt,
			}).WithError(lastErr).Warn("ozon: retrying request")

			select {
			case <-ctx.Done():
				return errors.Wrapf(ctx.Err(), "ozon %s: request cancelled", endpoint)
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		lastErr = c.do(ctx, creds, endpoint, payload, out)
		if lastErr == nil || !retryable(ctx, lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func (c *OzonClient) do(ctx context.Context, creds domain.Credentials, endpoint string, payload []byte, out interface{}) error {
	if c.config.Ozon.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Ozon.RequestTimeout)
		defer cancel()
	}

	url := strings.TrimRight(c.config.Ozon.BaseURL, "/") + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "ozon %s: error creating request", endpoint)
	}

	req.Header.Set("Client-Id", creds.ClientID)
	req.Header.Set("Api-Key", creds.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "ozon %s: error executing request", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WithMessagef(ErrMalformedResponse, "ozon %s: %v", endpoint, err)
	}

	return nil
}

func decodeAPIError(resp *http.Response, endpoint string) error {
	apiErr := &ozondomain.APIError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var errResp ozondomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Code = errResp.Code
		apiErr.Message = errResp.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var apiErr *ozondomain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}

	return !errors.Is(err, ErrMalformedResponse)
}
