package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyHandler_Convert(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api/rates/latest/USD", r.URL.Path)
		assert.Equal(t, "INR", r.URL.Query().Get("target"))
		_, _ = w.Write([]byte(`{"status_code":200,"data":{"base":"USD","target":"INR","mid":83,"unit":1}}`))
	}))
	defer upstream.Close()

	svc := service.NewCurrencyService(service.NewHexarateProvider(upstream.URL, time.Second), logger.NewNopLogger())
	server := newTestServer(NewCurrencyHandler(svc, logger.NewNopLogger()))

	testCases := []struct {
		name      string
		query     string
		wantCode  int
		wantBody  map[string]any
		wantCalls int32
	}{
		{
			name:      "成功",
			query:     "amount=10&from=usd&to=inr",
			wantCode:  http.StatusOK,
			wantBody:  map[string]any{"conversionRate": float64(83), "convertedAmount": float64(830)},
			wantCalls: 1,
		},
		{
			name:     "缺参数",
			query:    "amount=10&from=usd",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "Missing required parameters"},
		},
		{
			name:     "金额非法",
			query:    "amount=-1&from=usd&to=inr",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "Amount must be a positive number"},
		},
		{
			name:     "币种非法",
			query:    "amount=1&from=abc&to=inr",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "Invalid currency code: abc"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			atomic.StoreInt32(&calls, 0)
			recorder := do(t, server, http.MethodGet, "/api/convert?"+tc.query, "")
			assert.Equal(t, tc.wantCode, recorder.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body)
			assert.Equal(t, tc.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestCurrencyHandler_Currencies(t *testing.T) {
	svc := service.NewCurrencyService(service.NewHexarateProvider("http://127.0.0.1:0", time.Second), logger.NewNopLogger())
	server := newTestServer(NewCurrencyHandler(svc, logger.NewNopLogger()))

	recorder := do(t, server, http.MethodGet, "/api/currencies", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var codes []string
	res := decodeResult(t, recorder, &codes)
	assert.Equal(t, 0, res.Code)
	assert.Contains(t, codes, "USD")
	assert.Contains(t, codes, "INR")
}
