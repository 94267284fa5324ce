package logger

import "time"

func String(key, val string) Field {
	return Field{Key: key, Val: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Val: val}
}

func Int64(key string, val int64) Field {
	return Field{Key: key, Val: val}
}

func Float64(key string, val float64) Field {
	return Field{Key: key, Val: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Val: val}
}

func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Val: val}
}

func Error(err error) Field {
	return Field{Key: "error", Val: err}
}

func Any(key string, val any) Field {
	return Field{Key: key, Val: val}
}
