package server

import (
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func doRequest(t *testing.T, method, uri string, body []byte) *fasthttp.RequestCtx {
	t.Helper()
	s := New(zap.NewNop())

	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.SetBody(body)
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	s.Handler(&ctx)
	return &ctx
}

func TestHealth(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/health", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"ok"`)
}

func TestUnknownRoute(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestTableEndpoint(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/table?gender=male", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var tbl struct {
		Ref  string `json:"ref"`
		Rows []struct {
			Age int `json:"age"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &tbl))
	assert.Equal(t, "Table 28 (Males)", tbl.Ref)
	assert.Len(t, tbl.Rows, 21)
}

func TestTableEndpointBadGender(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodGet, "/table?gender=unknown", nil)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCalculateComplex(t *testing.T) {
	body := []byte(`{
		"method": "complex",
		"claimant": {"age_at_trial": 50, "gender": "male", "retirement_age": 65},
		"tax": {"rate": 0.40, "free_allowance": 0},
		"complex": {
			"old_pension": 20000,
			"accrued_pension": 10000,
			"new_pension": 5000,
			"multiplier": 22.00,
			"withdrawal_pct": 5,
			"old_lump_future": 60000,
			"new_lump_future": 20000,
			"new_lump_now": 10000
		}
	}`)
	ctx := doRequest(t, fasthttp.MethodPost, "/calculate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.NotNil(t, resp.Payload)
	assert.Equal(t, "complex", resp.Payload.Method)
	assert.Equal(t, "110000.00", resp.Payload.CapitalValue)
	assert.Equal(t, "1.0383", resp.Payload.DiscountFactor)
	// Manual multiplier: no table attribution.
	assert.Empty(t, resp.Payload.TableRef)
	assert.Empty(t, resp.Warnings)

	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.GrossTotal.Sub(resp.Result.TaxElement).Equal(resp.Result.NetTotal))
}

func TestCalculateUsesTableWhenNoManualMultiplier(t *testing.T) {
	body := []byte(`{
		"method": "complex",
		"claimant": {"age_at_trial": 50, "gender": "female", "retirement_age": 60},
		"tax": {"rate": 0.20, "free_allowance": 0},
		"complex": {
			"old_pension": 15000,
			"accrued_pension": 5000,
			"new_pension": 2000,
			"withdrawal_pct": 0,
			"old_lump_future": 0,
			"new_lump_future": 0,
			"new_lump_now": 0
		}
	}`)
	ctx := doRequest(t, fasthttp.MethodPost, "/calculate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "Table 29 (Females)", resp.Payload.TableRef)
	// Female, age 50, retire at 60: 26.00 - 0.90*10 = 17.00.
	assert.Equal(t, "17.00", resp.Payload.Multiplier)
}

func TestCalculateBadMethod(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/calculate", []byte(`{"method": "hybrid"}`))
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCalculateInvalidBody(t *testing.T) {
	ctx := doRequest(t, fasthttp.MethodPost, "/calculate", []byte(`{`))
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCalculateUnresolvedMultiplier(t *testing.T) {
	body := []byte(`{
		"method": "complex",
		"claimant": {"age_at_trial": 35, "gender": "male", "retirement_age": 65},
		"tax": {"rate": 0.40, "free_allowance": 0},
		"complex": {"old_pension": 20000, "accrued_pension": 0, "new_pension": 0, "withdrawal_pct": 0,
			"old_lump_future": 0, "new_lump_future": 0, "new_lump_now": 0}
	}`)
	ctx := doRequest(t, fasthttp.MethodPost, "/calculate", body)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "manual multiplier")
}

func TestCalculateWarnsPastRetirementAge(t *testing.T) {
	const tmpl = `{
		"method": "complex",
		"claimant": {"age_at_trial": %d, "gender": "male", "retirement_age": 60},
		"tax": {"rate": 0.40, "free_allowance": 0},
		"complex": {"old_pension": 20000, "accrued_pension": 10000, "new_pension": 5000,
			"multiplier": 10, "withdrawal_pct": 0,
			"old_lump_future": 0, "new_lump_future": 0, "new_lump_now": 0}
	}`

	// Trial age equal to retirement age: zero years, no warning.
	ctx := doRequest(t, fasthttp.MethodPost, "/calculate", []byte(fmt.Sprintf(tmpl, 60)))
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Empty(t, resp.Warnings)

	// Trial age past retirement: computed anyway, with a warning attached.
	ctx = doRequest(t, fasthttp.MethodPost, "/calculate", []byte(fmt.Sprintf(tmpl, 64)))
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "past the target retirement age")
}
