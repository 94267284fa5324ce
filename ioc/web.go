package ioc

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/asynccnu/be-toolkit/pkg/ginx"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/web"
	"github.com/asynccnu/be-toolkit/web/live"
	"github.com/asynccnu/be-toolkit/web/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

func InitGinServer(l logger.Logger, currency *web.CurrencyHandler, weather *web.WeatherHandler,
	pdf *web.PDFHandler, dictionary *web.DictionaryHandler, tool *web.ToolHandler,
	course *web.CourseHandler, palette *web.PaletteHandler, sgpaLive *live.Handler) *ginx.Server {
	type Config struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	}
	cfg := Config{Addr: ":8080"}
	err := viper.UnmarshalKey("http", &cfg)
	if err != nil {
		panic(err)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		corsHdl(cfg.AllowedOrigins),
		middleware.NewLogMiddlewareBuilder(func(ctx context.Context, al middleware.AccessLog) {
			l.Debug("HTTP请求", logger.Field{Key: "al", Val: al})
		}).AllowReq().AllowResp().IgnorePaths("/ws/", "/metrics", "/health").Build(),
	)
	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	currency.RegisterRoutes(engine)
	weather.RegisterRoutes(engine)
	pdf.RegisterRoutes(engine)
	dictionary.RegisterRoutes(engine)
	tool.RegisterRoutes(engine)
	course.RegisterRoutes(engine)
	palette.RegisterRoutes(engine)
	sgpaLive.RegisterRoutes(engine)

	ginx.InitCounter(prometheus.CounterOpts{
		Namespace: "asynccnu",
		Subsystem: "toolkit",
		Name:      "http",
		Help:      "按业务错误码统计的请求数",
	})
	ginx.SetLogger(l)
	return &ginx.Server{
		Engine: engine,
		Addr:   cfg.Addr,
	}
}

// InitHTTPServer gin 挂在 kratos 的 http server 上，由 kratos 管理启停和注册
func InitHTTPServer(s *ginx.Server) *khttp.Server {
	type Config struct {
		Timeout time.Duration `yaml:"timeout"`
	}
	cfg := Config{Timeout: 30 * time.Second}
	err := viper.UnmarshalKey("http", &cfg)
	if err != nil {
		panic(err)
	}
	srv := khttp.NewServer(
		khttp.Address(s.Addr),
		khttp.Timeout(cfg.Timeout),
	)
	srv.HandlePrefix("/", s.Engine)
	return srv
}

func corsHdl(allowed []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				// 你的开发环境
				return true
			}
			for _, o := range allowed {
				if o == "*" || o == origin {
					return true
				}
			}
			return false
		},
		MaxAge: 12 * time.Hour,
	})
}
