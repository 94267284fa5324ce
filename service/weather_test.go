package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherBody = `{"name":"Hyderabad","main":{"temp":31.5,"feels_like":35.2,"humidity":60},"weather":[{"description":"haze"}],"wind":{"speed":3.1}}`

func TestWeatherService_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		switch r.URL.Query().Get("q") {
		case "Hyderabad,IN":
			_, _ = w.Write([]byte(weatherBody))
		case "Atlantis,IN":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	svc := NewWeatherService(WeatherConfig{
		BaseURL:     server.URL,
		APIKey:      "secret",
		CountryCode: "IN",
		Timeout:     time.Second,
	}, logger.NewNopLogger())
	ctx := context.Background()

	w, err := svc.Lookup(ctx, " Hyderabad ")
	require.NoError(t, err)
	assert.JSONEq(t, weatherBody, string(w.Raw))

	b, err := svc.Brief(ctx, "Hyderabad")
	require.NoError(t, err)
	assert.Equal(t, "Hyderabad", b.Name)
	assert.Equal(t, 31.5, b.Main.Temp)
	require.Len(t, b.Weather, 1)
	assert.Equal(t, "haze", b.Weather[0].Description)

	_, err = svc.Lookup(ctx, "Atlantis")
	assert.True(t, errs.IsNotFound(err))

	_, err = svc.Lookup(ctx, "Gotham")
	assert.True(t, errs.IsUpstreamError(err))

	_, err = svc.Lookup(ctx, "  ")
	assert.True(t, errs.IsMissingParameter(err))
}
