//go:build wireinject

package main

import (
	"github.com/asynccnu/be-toolkit/events"
	"github.com/asynccnu/be-toolkit/ioc"
	"github.com/asynccnu/be-toolkit/repository"
	"github.com/asynccnu/be-toolkit/repository/dao"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/asynccnu/be-toolkit/web"
	"github.com/asynccnu/be-toolkit/web/live"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

func InitApp() *kratos.App {
	wire.Build(
		ioc.InitApp,
		ioc.InitHTTPServer,
		ioc.InitGinServer,
		ioc.InitBot,
		// handler
		web.NewCurrencyHandler, web.NewWeatherHandler, ioc.InitPDFHandler,
		web.NewDictionaryHandler, web.NewToolHandler, web.NewCourseHandler,
		web.NewPaletteHandler, live.NewHandler,
		// 实时推送
		live.NewHub,
		wire.Bind(new(events.Producer), new(*live.Hub)),
		// service
		service.NewCurrencyService, ioc.InitRateProvider,
		ioc.InitWeatherService, ioc.InitDictionaryService,
		service.NewPDFService, service.NewQRService, service.NewMarkdownService,
		service.NewCourseService, service.NewPaletteService,
		// repository
		repository.NewCourseRepository, repository.NewPaletteRepository, repository.NewHistoryRepository,
		dao.NewSQLiteCourseDAO, dao.NewSQLitePaletteDAO, dao.NewSQLiteHistoryDAO,
		// 组件
		ioc.InitDB,
		ioc.InitLogger,
		ioc.InitEtcdClient,
		ioc.InitRegistrar,
	)
	return new(kratos.App)
}
