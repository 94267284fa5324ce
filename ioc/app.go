package ioc

import (
	"github.com/asynccnu/be-toolkit/bot"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/web/live"
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/registry"
	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/spf13/viper"
)

func InitApp(l logger.Logger, hs *khttp.Server, hub *live.Hub, b *bot.Bot, r registry.Registrar) *kratos.App {
	type Config struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	}
	cfg := Config{Name: "be-toolkit", Version: "dev"}
	err := viper.UnmarshalKey("app", &cfg)
	if err != nil {
		panic(err)
	}

	servers := []transport.Server{hs, hub}
	if b != nil {
		servers = append(servers, b)
	}
	opts := []kratos.Option{
		kratos.Name(cfg.Name),
		kratos.Version(cfg.Version),
		kratos.Logger(logger.NewKratosLogger(l)),
		kratos.Server(servers...),
	}
	if r != nil {
		opts = append(opts, kratos.Registrar(r))
	}
	return kratos.New(opts...)
}
