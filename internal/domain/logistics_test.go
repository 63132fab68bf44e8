package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLogisticsRecord_Validate(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	valid := LogisticsRecord{
		OrderID:      "1",
		DeliveryType: DeliveryTypeFBS,
		Status:       DeliveryStatusDelivered,
		Cost:         decimal.RequireFromString("150.00"),
		DeliveryDate: &date,
	}

	tests := []struct {
		name    string
		mutate  func(r *LogisticsRecord)
		wantErr bool
	}{
		{name: "delivered with date", mutate: func(r *LogisticsRecord) {}},
		{name: "delivered without date", mutate: func(r *LogisticsRecord) { r.DeliveryDate = nil }},
		{name: "in transit without date", mutate: func(r *LogisticsRecord) {
			r.Status = DeliveryStatusInTransit
			r.DeliveryDate = nil
		}},
		{name: "in transit with date", mutate: func(r *LogisticsRecord) { r.Status = DeliveryStatusInTransit }, wantErr: true},
		{name: "negative cost", mutate: func(r *LogisticsRecord) { r.Cost = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "unknown delivery type", mutate: func(r *LogisticsRecord) { r.DeliveryType = "RFBS" }, wantErr: true},
		{name: "missing order id", mutate: func(r *LogisticsRecord) { r.OrderID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			err := record.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRecord)
				return
			}
			assert.NoError(t, err)
		})
	}
}
