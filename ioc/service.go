package ioc

import (
	"time"

	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/repository"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/asynccnu/be-toolkit/web"
	"github.com/spf13/viper"
)

func InitRateProvider() service.RateProvider {
	type Config struct {
		BaseURL string        `yaml:"baseURL"`
		Timeout time.Duration `yaml:"timeout"`
	}
	cfg := Config{
		BaseURL: "https://hexarate.paikama.co",
		Timeout: 10 * time.Second,
	}
	err := viper.UnmarshalKey("currency", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewHexarateProvider(cfg.BaseURL, cfg.Timeout)
}

func InitWeatherService(l logger.Logger) service.WeatherService {
	type Config struct {
		BaseURL     string        `yaml:"baseURL"`
		APIKey      string        `yaml:"apiKey"`
		CountryCode string        `yaml:"countryCode"`
		Timeout     time.Duration `yaml:"timeout"`
	}
	cfg := Config{
		BaseURL:     "https://api.openweathermap.org",
		CountryCode: "IN",
		Timeout:     10 * time.Second,
	}
	err := viper.UnmarshalKey("weather", &cfg)
	if err != nil {
		panic(err)
	}
	// 环境变量 OPENWEATHER_API_KEY 优先
	if key := viper.GetString("weather.apiKey"); key != "" {
		cfg.APIKey = key
	}
	if cfg.APIKey == "" {
		l.Warn("没有配置 openweathermap 的 API key，天气接口将不可用")
	}
	return service.NewWeatherService(service.WeatherConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		CountryCode: cfg.CountryCode,
		Timeout:     cfg.Timeout,
	}, l)
}

func InitDictionaryService(history repository.HistoryRepository, l logger.Logger) service.DictionaryService {
	type Config struct {
		BaseURL string        `yaml:"baseURL"`
		Timeout time.Duration `yaml:"timeout"`
	}
	cfg := Config{
		BaseURL: "https://api.dictionaryapi.dev",
		Timeout: 10 * time.Second,
	}
	err := viper.UnmarshalKey("dictionary", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewDictionaryService(cfg.BaseURL, cfg.Timeout, history, l)
}

func InitPDFHandler(svc service.PDFService, l logger.Logger) *web.PDFHandler {
	type Config struct {
		MaxUploadMB int64 `yaml:"maxUploadMB"`
	}
	var cfg Config
	err := viper.UnmarshalKey("pdf", &cfg)
	if err != nil {
		panic(err)
	}
	return web.NewPDFHandler(svc, cfg.MaxUploadMB<<20, l)
}
