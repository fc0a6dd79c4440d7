package netgen

import "log/slog"

// options 渲染与生成选项。
type options struct {
	header string
	strict bool // 未知关键字是否报错（默认静默丢弃该行）
	logger *slog.Logger
}

// Option 选项函数。
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{header: DefaultHeader, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithHeader 替换文件头注释块，空字符串表示不写文件头。
func WithHeader(header string) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithStrict 启用严格模式：未知关键字返回 [ErrUnknownKeyword]，而不是丢弃该行。
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger 设置日志记录器，默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
