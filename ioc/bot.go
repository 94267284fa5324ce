package ioc

import (
	"time"

	"github.com/asynccnu/be-toolkit/bot"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/spf13/viper"
)

// InitBot 没有 token 时返回 nil，不启动机器人
func InitBot(currency service.CurrencyService, weather service.WeatherService,
	dictionary service.DictionaryService, course service.CourseService, l logger.Logger) *bot.Bot {
	type Config struct {
		Token       string        `yaml:"token"`
		PollTimeout time.Duration `yaml:"pollTimeout"`
	}
	var cfg Config
	err := viper.UnmarshalKey("telegram", &cfg)
	if err != nil {
		panic(err)
	}
	// 环境变量 TELEGRAM_BOT_TOKEN 优先
	if token := viper.GetString("telegram.token"); token != "" {
		cfg.Token = token
	}
	if cfg.Token == "" {
		l.Info("没有配置 Telegram token，跳过机器人")
		return nil
	}
	b, err := bot.NewBot(bot.Settings{
		Token:   cfg.Token,
		Timeout: cfg.PollTimeout,
	}, currency, weather, dictionary, course, l)
	if err != nil {
		panic(err)
	}
	return b
}
