package share

var debug bool

// SetDebug 设置调试模式
func SetDebug(enabled bool) {
	debug = enabled
}

// GetDebug 获取调试模式
func GetDebug() bool {
	return debug
}
