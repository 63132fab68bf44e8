package config

import (
	"reflect"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToDecimalHookFunc(t *testing.T) {
	type prices struct {
		Month decimal.Decimal `mapstructure:"month"`
		Year  decimal.Decimal `mapstructure:"year"`
		Other string          `mapstructure:"other"`
	}

	var out prices
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: StringToDecimalHookFunc(),
		Result:     &out,
	})
	require.NoError(t, err)

	require.NoError(t, decoder.Decode(map[string]interface{}{
		"month": "990.50",
		"year":  8990,
		"other": "unchanged",
	}))

	assert.Equal(t, "990.50", out.Month.StringFixed(2))
	assert.True(t, out.Year.Equal(decimal.NewFromInt(8990)))
	assert.Equal(t, "unchanged", out.Other)
}

func TestStringToDecimalHookFunc_InvalidString(t *testing.T) {
	hook := StringToDecimalHookFunc().(func(reflect.Type, reflect.Type, interface{}) (interface{}, error))
	_, err := hook(reflect.TypeOf(""), reflect.TypeOf(decimal.Decimal{}), "not-a-number")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Report:       Report{MaxPeriodDays: 90, AllowedPeriods: []int{7, 28}},
			Subscription: Subscription{TrialPeriodDays: 7},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "non positive max period", mutate: func(c *Config) { c.Report.MaxPeriodDays = 0 }, wantErr: true},
		{name: "allowed period above max", mutate: func(c *Config) { c.Report.AllowedPeriods = []int{7, 120} }, wantErr: true},
		{name: "negative trial", mutate: func(c *Config) { c.Subscription.TrialPeriodDays = -1 }, wantErr: true},
		{name: "storage without bucket", mutate: func(c *Config) { c.Storage.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
