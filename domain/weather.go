package domain

import "encoding/json"

// Weather 下游天气接口的原始返回，原样透传给前端
type Weather struct {
	City string
	Raw  json.RawMessage
}

// WeatherBrief 只挑几个字段给机器人之类的纯文本场景使用
type WeatherBrief struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}
