package bot

import (
	"context"
	"time"

	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/service"
	tele "gopkg.in/telebot.v3"
)

const requestTimeout = 10 * time.Second

// Bot Telegram 机器人，复用 HTTP 接口背后的同一批 service
// 实现了 kratos 的 transport.Server，由 app 统一启停
type Bot struct {
	b          *tele.Bot
	currency   service.CurrencyService
	weather    service.WeatherService
	dictionary service.DictionaryService
	course     service.CourseService
	l          logger.Logger
}

type Settings struct {
	Token   string
	Timeout time.Duration
	// Offline 不请求 Telegram，测试用
	Offline bool
}

func NewBot(s Settings, currency service.CurrencyService, weather service.WeatherService,
	dictionary service.DictionaryService, course service.CourseService, l logger.Logger) (*Bot, error) {
	if s.Timeout <= 0 {
		s.Timeout = 10 * time.Second
	}
	b, err := tele.NewBot(tele.Settings{
		Token:   s.Token,
		Poller:  &tele.LongPoller{Timeout: s.Timeout},
		Offline: s.Offline,
		OnError: func(err error, c tele.Context) {
			l.Error("处理 Telegram 消息失败", logger.Error(err))
		},
	})
	if err != nil {
		return nil, err
	}
	res := &Bot{
		b:          b,
		currency:   currency,
		weather:    weather,
		dictionary: dictionary,
		course:     course,
		l:          l,
	}
	res.routes()
	return res, nil
}

func (b *Bot) routes() {
	b.b.Handle("/start", b.wrap(func(ctx context.Context, args []string) string {
		return helpText
	}))
	b.b.Handle("/help", b.wrap(func(ctx context.Context, args []string) string {
		return helpText
	}))
	b.b.Handle("/convert", b.wrap(b.handleConvert))
	b.b.Handle("/weather", b.wrap(b.handleWeather))
	b.b.Handle("/define", b.wrap(b.handleDefine))
	b.b.Handle("/sgpa", b.wrap(b.handleSGPA))
}

func (b *Bot) wrap(fn func(ctx context.Context, args []string) string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return c.Send(fn(ctx, c.Args()))
	}
}

// Start 阻塞拉取消息，直到 Stop
func (b *Bot) Start(ctx context.Context) error {
	b.l.Info("Telegram 机器人开始拉取消息", logger.String("username", b.b.Me.Username))
	b.b.Start()
	return nil
}

func (b *Bot) Stop(ctx context.Context) error {
	b.b.Stop()
	return nil
}
