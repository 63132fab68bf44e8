package ozon

import (
	"context"
	"errors"

	ozondomain "github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/ozonclient"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
)

var ErrCredentialsRejected = errors.New("ozon rejected the credentials")

// Factory hands out data sources bound to seller credentials.
type Factory struct {
	cfg    *config.Config
	client ozonclient.Client
}

func NewFactory(cfg *config.Config, client ozonclient.Client) *Factory {
	return &Factory{
		cfg:    cfg,
		client: client,
	}
}

func (f *Factory) DataSource(creds domain.Credentials) reporting.DataSource {
	if f.cfg.Ozon.UseStub {
		return NewStaticDataSource()
	}
	return New(f.cfg, f.client, creds)
}

// ValidateCredentials checks the credentials against the Seller API.
// Rejections wrap ErrCredentialsRejected; other failures are returned as is.
func (f *Factory) ValidateCredentials(ctx context.Context, creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	if f.cfg.Ozon.UseStub {
		return nil
	}

	_, err := f.client.ListRoles(ctx, creds)
	if err == nil {
		return nil
	}

	var apiErr *ozondomain.APIError
	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
		return errors.Join(ErrCredentialsRejected, err)
	}
	return err
}
