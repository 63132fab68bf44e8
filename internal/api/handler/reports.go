package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/ozon-logistics-api/infrastructure/render"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/storage"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
	"github.com/vfg2006/ozon-logistics-api/pkg/log"
	"github.com/vfg2006/ozon-logistics-api/pkg/utils"
)

const (
	ReportURLHeader     = "X-Report-Url"
	ReportWarningHeader = "X-Report-Warning"
)

type ReportRequest struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
	Days     int    `json:"days"`
	Format   string `json:"format"`
}

type SellerReportRequest struct {
	Days   int    `json:"days"`
	Format string `json:"format"`
}

// ReportDelivery renders documents and optionally archives the file.
type ReportDelivery struct {
	Registry *render.Registry
	Archive  storage.Archive
}

func (d ReportDelivery) renderer(format string) (render.Renderer, error) {
	if strings.TrimSpace(format) == "" {
		format = render.FormatJSON
	}
	return d.Registry.Get(format)
}

// deliver writes the document in the requested format. A degenerate report is
// still delivered, flagged by its warning.
func (d ReportDelivery) deliver(ctx context.Context, w http.ResponseWriter, owner string, renderer render.Renderer, doc *domain.ReportDocument) {
	logger := log.ForContext(ctx).WithFields(log.Fields{"format": renderer.Format()})

	content, err := renderer.Render(doc)
	if err != nil {
		logger.WithError(err).Error("error rendering report")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error rendering report", nil)
		return
	}

	fileName := render.FileName(doc, renderer)

	if d.Archive != nil {
		if url, err := d.archive(ctx, owner, fileName, renderer, content); err != nil {
			logger.WithError(err).Warn("report archive failed, returning the file only")
		} else {
			w.Header().Set(ReportURLHeader, url)
		}
	}

	if doc.HasWarning(domain.WarningDegenerateReport) {
		w.Header().Set(ReportWarningHeader, domain.WarningDegenerateReport)
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	if renderer.Format() != render.FormatJSON {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		logger.WithError(err).Warn("error writing report")
	}
}

func (d ReportDelivery) archive(ctx context.Context, owner, fileName string, renderer render.Renderer, content []byte) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s_%s", owner, id, fileName)
	return d.Archive.Store(ctx, key, content, renderer.ContentType())
}

func ReportPeriods(service reporting.ReportService, delivery ReportDelivery) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"periods": service.AllowedPeriods(),
			"formats": delivery.Registry.Formats(),
		})
	})
}

// GenerateReport builds a report for the credentials in the body.
func GenerateReport(service reporting.ReportService, delivery ReportDelivery) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ReportRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", nil)
			return
		}

		renderer, err := delivery.renderer(req.Format)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		creds := domain.Credentials{ClientID: strings.TrimSpace(req.ClientID), APIKey: strings.TrimSpace(req.APIKey)}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"client_id": creds.ClientID,
			"days":      req.Days,
		}).Info("report requested")

		doc, err := service.GenerateReport(r.Context(), creds, req.Days)
		if err != nil && !errors.Is(err, reporting.ErrDegenerateReport) {
			writeServiceError(w, r, err)
			return
		}

		delivery.deliver(r.Context(), w, creds.ClientID, renderer, doc)
	})
}

// GenerateSellerReport builds a report with the credentials stored for the seller.
func GenerateSellerReport(service reporting.ReportService, delivery ReportDelivery) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		telegramID, err := telegramIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req SellerReportRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", nil)
			return
		}

		renderer, err := delivery.renderer(req.Format)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		doc, err := service.GenerateSellerReport(r.Context(), telegramID, req.Days)
		if err != nil && !errors.Is(err, reporting.ErrDegenerateReport) {
			writeServiceError(w, r, err)
			return
		}

		delivery.deliver(r.Context(), w, fmt.Sprintf("tg-%d", telegramID), renderer, doc)
	})
}
