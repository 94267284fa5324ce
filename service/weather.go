package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/logger"
)

type WeatherService interface {
	// Lookup 原样返回 openweathermap 的 JSON
	Lookup(ctx context.Context, city string) (domain.Weather, error)
	Brief(ctx context.Context, city string) (domain.WeatherBrief, error)
}

type WeatherConfig struct {
	BaseURL     string
	APIKey      string
	CountryCode string
	Timeout     time.Duration
}

type weatherService struct {
	cfg    WeatherConfig
	client *http.Client
	l      logger.Logger
}

func NewWeatherService(cfg WeatherConfig, l logger.Logger) WeatherService {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &weatherService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		l:      l,
	}
}

func (s *weatherService) Lookup(ctx context.Context, city string) (domain.Weather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Weather{}, errs.ErrorMissingParameter("Invalid request")
	}

	q := url.Values{}
	q.Set("q", city+","+s.cfg.CountryCode)
	q.Set("appid", s.cfg.APIKey)
	q.Set("units", "metric")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return domain.Weather{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.l.Error("请求天气接口失败", logger.String("city", city), logger.Error(err))
		return domain.Weather{}, errs.ErrorUpstreamUnavailable("An error occurred while fetching weather data")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.Weather{}, errs.ErrorNotFound("City not found")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		s.l.Warn("天气接口返回异常", logger.String("city", city), logger.Int("status", resp.StatusCode))
		return domain.Weather{}, errs.ErrorUpstreamError(resp.StatusCode, "Failed to fetch weather data")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Weather{}, errs.ErrorUpstreamUnavailable("An error occurred while fetching weather data")
	}
	if !json.Valid(body) {
		return domain.Weather{}, errs.ErrorUpstreamError(http.StatusBadGateway, "Failed to fetch weather data")
	}
	return domain.Weather{City: city, Raw: body}, nil
}

func (s *weatherService) Brief(ctx context.Context, city string) (domain.WeatherBrief, error) {
	w, err := s.Lookup(ctx, city)
	if err != nil {
		return domain.WeatherBrief{}, err
	}
	var b domain.WeatherBrief
	if err = json.Unmarshal(w.Raw, &b); err != nil {
		return domain.WeatherBrief{}, errs.ErrorUpstreamError(http.StatusBadGateway, "Failed to fetch weather data")
	}
	return b, nil
}
