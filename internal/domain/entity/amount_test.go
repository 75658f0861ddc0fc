package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		want  string
	}{
		{"1200", true, "1200"},
		{" 15.5 ", true, "15.5"},
		{"-3", true, "-3"},
		{"", true, "0"},
		{"12abc", false, ""},
		{"abc", false, ""},
	}
	for _, tc := range cases {
		got := entity.ParseAmount(tc.in)
		assert.Equal(t, tc.valid, got.Valid(), "entrada %q", tc.in)
		if tc.valid {
			assert.Equal(t, tc.want, got.Decimal().String(), "entrada %q", tc.in)
		}
	}
}

func TestAmount_AddPropagaInvalido(t *testing.T) {
	a := entity.AmountFromInt(10)
	assert.True(t, a.Add(entity.AmountFromInt(5)).Equal(entity.AmountFromInt(15)))
	assert.False(t, a.Add(entity.InvalidAmount).Valid())
	assert.False(t, entity.InvalidAmount.Add(a).Valid())
	assert.False(t, entity.InvalidAmount.IsPositive())
}

func TestAmount_ValorCeroEsValido(t *testing.T) {
	var a entity.Amount
	assert.True(t, a.Valid())
	assert.True(t, a.Decimal().IsZero())
}

func TestAmount_UnmarshalJSON_NumeroYCadena(t *testing.T) {
	var rec entity.SalesRecord
	raw := `{
		"store_name": "A",
		"photo_detail_type": "ID",
		"daily_sales": {"2024-06-01": 1000, "2024-06-02": "250.50"},
		"monthly_total": "1250.50",
		"estimated_monthly": 37515
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.True(t, rec.MonthlyTotal.Decimal().Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, rec.EstimatedMonthly.Equal(entity.AmountFromInt(37515)))
	assert.True(t, rec.SalesOn("2024-06-02").Decimal().Equal(decimal.RequireFromString("250.5")))
	assert.True(t, rec.SalesOn("2024-06-30").Equal(entity.Amount{}), "fecha ausente = 0")
}

func TestAmount_UnmarshalJSON_NoNumerico(t *testing.T) {
	var payload struct {
		A entity.Amount `json:"a"`
		B entity.Amount `json:"b"`
		C entity.Amount `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"n/a","b":true,"c":null}`), &payload))
	assert.False(t, payload.A.Valid())
	assert.False(t, payload.B.Valid())
	assert.True(t, payload.C.Valid(), "null se trata como 0")
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal([]entity.Amount{entity.AmountFromInt(7), entity.InvalidAmount})
	require.NoError(t, err)
	assert.JSONEq(t, `["7", null]`, string(out))
}

func TestDailyTotal_Day(t *testing.T) {
	assert.Equal(t, "2024-06-01", entity.DailyTotal{StatDate: "2024-06-01T00:00:00.000Z"}.Day())
	assert.Equal(t, "2024-06-01", entity.DailyTotal{StatDate: "2024-06-01"}.Day())
}
