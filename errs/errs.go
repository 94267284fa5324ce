package errs

const (
	// InternalServerError 一个非常含糊的错误码。代表系统内部错误
	InternalServerError = 500001
)

// Currency 部分，模块代码使用 01
const (
	// CurrencyInvalidInput 一个非常含糊的错误码，代表汇率相关的API参数不对
	CurrencyInvalidInput = 401001
	CurrencyUpstream     = 401002
)

const (
	WeatherInvalidInput = 402001
	WeatherNotFound     = 402002
)

const (
	DictionaryInvalidInput = 403001
	DictionaryNotFound     = 403002
)

const (
	CourseInvalidInput = 404001
	CourseNotFound     = 404002
)

const (
	PaletteInvalidInput = 405001
	PaletteNotFound     = 405002
)

const (
	PDFInvalidInput = 406001
)

const (
	QRInvalidInput = 407001
)

const MarkdownInvalidInput = 408001
