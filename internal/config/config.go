// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .netgen.yaml 等，见 cfgm.DefaultPaths
//  3. 环境变量 - NETGEN_ 前缀
//  4. CLI flags - 仅显式指定的 flag 生效
package config

// AppName 应用名称，用于配置文件搜索路径。
const AppName = "netgen"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "NETGEN_"

// Config 应用配置。
type Config struct {
	Network NetworkConfig `json:"network" desc:"网络生成配置"`
	Log     LogConfig     `json:"log" desc:"日志配置"`
}

// NetworkConfig 生成一个网络源文件所需的路径与选项。
type NetworkConfig struct {
	Template string `json:"template" desc:"网络模板文件路径"`
	Species  string `json:"species" desc:"物种定义文件路径"`
	Output   string `json:"output" desc:"生成的源文件路径"`
	Strict   bool   `json:"strict" desc:"未知标记关键字视为错误"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别: debug|info|warn|error"`
	Format string `json:"format" desc:"日志格式: text|json"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
