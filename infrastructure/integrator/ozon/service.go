package ozon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	ozondomain "github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/ozonclient"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

const (
	defaultPageSize      = 1000
	productInfoBatch     = 1000
	hoursPerDay          = 24
	maxPostingPages      = 100
	postingSortAscending = "ASC"
)

// Integrator reads report data from the Ozon Seller API for one seller.
type Integrator struct {
	client ozonclient.Client
	cfg    *config.Config
	creds  domain.Credentials
}

func New(cfg *config.Config, client ozonclient.Client, creds domain.Credentials) *Integrator {
	return &Integrator{
		client: client,
		cfg:    cfg,
		creds:  creds,
	}
}

// ErrIncompleteCatalog is returned when the product list names products the
// info endpoint does not return.
var ErrIncompleteCatalog = errors.New("ozon: product info missing for listed products")

// reportDays aligns a period to whole UTC days: from the first day of the
// period up to, not including, the day it ends. Analytics and postings are
// both requested over these Days calendar days.
func reportDays(period domain.Period) (since, until time.Time) {
	since = startOfDay(period.From)
	until = startOfDay(period.To)
	return since, until
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Integrator) pageSize() int {
	if s.cfg.Ozon.PageSize > 0 {
		return s.cfg.Ozon.PageSize
	}
	return defaultPageSize
}

// FetchAnalytics returns the seller totals for the period. The return rate is
// returns over ordered units, capped at 1 since returns may belong to orders
// placed before the period.
//
// The analytics dates are inclusive, so the last requested day is the one
// before the period end. The average delivery time is Ozon's rolling figure
// for the seller and is not scoped to the period.
func (s *Integrator) FetchAnalytics(ctx context.Context, period domain.Period) (domain.AnalyticsSummary, error) {
	metrics := []string{ozondomain.MetricRevenue, ozondomain.MetricOrderedUnits, ozondomain.MetricReturns}
	since, until := reportDays(period)

	data, err := s.client.GetAnalyticsData(ctx, s.creds, ozondomain.AnalyticsDataRequest{
		DateFrom:  since.Format(time.DateOnly),
		DateTo:    until.AddDate(0, 0, -1).Format(time.DateOnly),
		Metrics:   metrics,
		Dimension: []string{"day"},
		Filters:   []ozondomain.AnalyticsFilter{},
		Limit:     s.pageSize(),
	})
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	delivery, err := s.client.GetAverageDeliveryTime(ctx, s.creds)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	revenue := data.Result.Total(0)
	orders := data.Result.Total(1)
	returns := data.Result.Total(2)

	returnRate := decimal.Zero
	if orders.IsPositive() {
		returnRate = decimal.Min(returns.Div(orders), decimal.NewFromInt(1)).Round(4)
	}

	summary := domain.AnalyticsSummary{
		TotalOrders:         int(orders.IntPart()),
		TotalRevenue:        revenue.Round(2),
		AverageDeliveryTime: delivery.AverageDeliveryTime.Div(decimal.NewFromInt(hoursPerDay)).Round(1),
		ReturnRate:          returnRate,
	}

	logrus.WithFields(logrus.Fields{
		"client_id": s.creds.ClientID,
		"orders":    summary.TotalOrders,
	}).Debug("ozon: analytics fetched")

	return summary, nil
}

// FetchLogistics returns FBO postings followed by FBS postings created in the period.
func (s *Integrator) FetchLogistics(ctx context.Context, period domain.Period) ([]domain.LogisticsRecord, error) {
	records := make([]domain.LogisticsRecord, 0)

	fbo, err := s.fboPostings(ctx, period)
	if err != nil {
		return nil, err
	}
	for _, p := range fbo {
		records = append(records, fboRecord(p))
	}

	fbs, err := s.fbsPostings(ctx, period)
	if err != nil {
		return nil, err
	}
	for _, p := range fbs {
		records = append(records, fbsRecord(p))
	}

	logrus.WithFields(logrus.Fields{
		"client_id": s.creds.ClientID,
		"fbo":       len(fbo),
		"fbs":       len(fbs),
	}).Debug("ozon: postings fetched")

	return records, nil
}

// postingRequest filters on the same days as FetchAnalytics. The posting
// filter bounds are inclusive.
func (s *Integrator) postingRequest(period domain.Period, offset int) ozondomain.PostingListRequest {
	since, until := reportDays(period)

	return ozondomain.PostingListRequest{
		Dir: postingSortAscending,
		Filter: ozondomain.PostingListFilter{
			Since: since,
			To:    until.Add(-time.Nanosecond),
		},
		Limit:  s.pageSize(),
		Offset: offset,
		With: ozondomain.PostingWith{
			AnalyticsData: true,
			FinancialData: true,
		},
	}
}

func (s *Integrator) fboPostings(ctx context.Context, period domain.Period) ([]ozondomain.FBOPosting, error) {
	var postings []ozondomain.FBOPosting
	for page := 0; page < maxPostingPages; page++ {
		resp, err := s.client.ListFBOPostings(ctx, s.creds, s.postingRequest(period, len(postings)))
		if err != nil {
			return nil, err
		}
		postings = append(postings, resp.Result...)
		if len(resp.Result) < s.pageSize() {
			return postings, nil
		}
	}
	return nil, fmt.Errorf("ozon: fbo posting list exceeded %d pages", maxPostingPages)
}

func (s *Integrator) fbsPostings(ctx context.Context, period domain.Period) ([]ozondomain.FBSPosting, error) {
	var postings []ozondomain.FBSPosting
	for page := 0; page < maxPostingPages; page++ {
		resp, err := s.client.ListFBSPostings(ctx, s.creds, s.postingRequest(period, len(postings)))
		if err != nil {
			return nil, err
		}
		postings = append(postings, resp.Result.Postings...)
		if !resp.Result.HasNext || len(resp.Result.Postings) == 0 {
			return postings, nil
		}
	}
	return nil, fmt.Errorf("ozon: fbs posting list exceeded %d pages", maxPostingPages)
}

// FetchCatalog returns the current catalog in product list order.
func (s *Integrator) FetchCatalog(ctx context.Context) ([]domain.ProductRecord, error) {
	items, err := s.listProducts(ctx)
	if err != nil {
		return nil, err
	}

	infoByID := make(map[int64]ozondomain.ProductInfo, len(items))
	for start := 0; start < len(items); start += productInfoBatch {
		end := min(start+productInfoBatch, len(items))

		ids := make([]int64, 0, end-start)
		for _, item := range items[start:end] {
			ids = append(ids, item.ProductID)
		}

		resp, err := s.client.GetProductInfo(ctx, s.creds, ids)
		if err != nil {
			return nil, err
		}
		for _, info := range resp.Items {
			infoByID[info.ID] = info
		}
	}

	categories := map[int64]string{}
	if len(items) > 0 {
		tree, err := s.client.GetCategoryTree(ctx, s.creds)
		if err != nil {
			return nil, err
		}
		categories = tree.CategoryNames()
	}

	products := make([]domain.ProductRecord, 0, len(items))
	var missing []int64
	for _, item := range items {
		info, ok := infoByID[item.ProductID]
		if !ok {
			missing = append(missing, item.ProductID)
			continue
		}
		products = append(products, productRecord(info, categories))
	}

	if len(missing) > 0 {
		logrus.WithFields(logrus.Fields{
			"client_id":   s.creds.ClientID,
			"listed":      len(items),
			"missing":     len(missing),
			"product_ids": missing,
		}).Warn("ozon: catalog incomplete")
		return nil, fmt.Errorf("%w: %d of %d", ErrIncompleteCatalog, len(missing), len(items))
	}

	return products, nil
}

func (s *Integrator) listProducts(ctx context.Context) ([]ozondomain.ProductListItem, error) {
	var items []ozondomain.ProductListItem
	lastID := ""
	for {
		resp, err := s.client.ListProducts(ctx, s.creds, ozondomain.ProductListRequest{
			Filter: ozondomain.ProductListFilter{Visibility: "ALL"},
			LastID: lastID,
			Limit:  s.pageSize(),
		})
		if err != nil {
			return nil, err
		}

		items = append(items, resp.Result.Items...)
		if len(resp.Result.Items) < s.pageSize() || resp.Result.LastID == "" || resp.Result.LastID == lastID {
			return items, nil
		}
		lastID = resp.Result.LastID
	}
}
