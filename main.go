package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	initViper()
	app := InitApp()
	if err := app.Run(); err != nil {
		panic(err)
	}
}

func initViper() {
	cfile := pflag.String("config", "config/config.yaml", "配置文件路径")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*cfile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	// 密钥不进配置文件
	_ = viper.BindEnv("weather.apiKey", "OPENWEATHER_API_KEY")
	_ = viper.BindEnv("telegram.token", "TELEGRAM_BOT_TOKEN")
}
