package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/shopspring/decimal"
)

type CurrencyService interface {
	// Convert 校验参数后向汇率接口发起且仅发起一次请求，不重试，不缓存
	Convert(ctx context.Context, amount, from, to string) (domain.Conversion, error)
	Currencies() []string
}

// RateProvider 查询 from -> to 的中间价
type RateProvider interface {
	MidRate(ctx context.Context, from, to string) (float64, error)
}

type currencyService struct {
	rates RateProvider
	l     logger.Logger
}

func NewCurrencyService(rates RateProvider, l logger.Logger) CurrencyService {
	return &currencyService{
		rates: rates,
		l:     l,
	}
}

func (s *currencyService) Convert(ctx context.Context, amountRaw, fromRaw, toRaw string) (domain.Conversion, error) {
	if amountRaw == "" || fromRaw == "" || toRaw == "" {
		return domain.Conversion{}, errs.ErrorMissingParameter("Missing required parameters")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountRaw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domain.Conversion{}, errs.ErrorInvalidAmount("Amount must be a positive number")
	}
	from := strings.ToUpper(strings.TrimSpace(fromRaw))
	if !isValidCurrencyCode(from) {
		return domain.Conversion{}, errs.ErrorInvalidCurrencyCode("Invalid currency code: %s", fromRaw)
	}
	to := strings.ToUpper(strings.TrimSpace(toRaw))
	if !isValidCurrencyCode(to) {
		return domain.Conversion{}, errs.ErrorInvalidCurrencyCode("Invalid currency code: %s", toRaw)
	}

	rate, err := s.rates.MidRate(ctx, from, to)
	if err != nil {
		s.l.Error("查询汇率失败",
			logger.String("from", from),
			logger.String("to", to),
			logger.Error(err))
		return domain.Conversion{}, err
	}
	converted, _ := decimal.NewFromFloat(rate).Mul(decimal.NewFromFloat(amount)).Float64()
	return domain.Conversion{
		From:            from,
		To:              to,
		Amount:          amount,
		ConversionRate:  rate,
		ConvertedAmount: converted,
	}, nil
}

func (s *currencyService) Currencies() []string {
	res := make([]string, len(currencyCodes))
	copy(res, currencyCodes)
	return res
}

type hexarateResp struct {
	StatusCode int `json:"status_code"`
	Data       struct {
		Base   string  `json:"base"`
		Target string  `json:"target"`
		Mid    float64 `json:"mid"`
		Unit   int     `json:"unit"`
	} `json:"data"`
}

// HexarateProvider 对接 hexarate 的最新汇率接口
type HexarateProvider struct {
	baseURL string
	client  *http.Client
}

func NewHexarateProvider(baseURL string, timeout time.Duration) *HexarateProvider {
	return &HexarateProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HexarateProvider) MidRate(ctx context.Context, from, to string) (float64, error) {
	requestUrl := fmt.Sprintf("%s/api/rates/latest/%s?target=%s",
		p.baseURL, url.PathEscape(from), url.QueryEscape(to))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, errs.ErrorUpstreamUnavailable("An error occurred while fetching exchange rate")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, errs.ErrorUpstreamError(resp.StatusCode, "Failed to fetch exchange rate")
	}

	var data hexarateResp
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, errs.ErrorUpstreamUnavailable("An error occurred while fetching exchange rate")
	}
	if data.Data.Mid <= 0 {
		return 0, errs.ErrorUpstreamError(http.StatusBadGateway, "Failed to fetch exchange rate")
	}
	return data.Data.Mid, nil
}

var _ RateProvider = (*HexarateProvider)(nil)

