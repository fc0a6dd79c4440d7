// Package cfgm 提供分层配置加载。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 设置，仅用户显式指定的 flag 生效
//
// # 快速开始
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "netgen",
//	    cfgm.WithEnvPrefix("NETGEN_"),
//	)
//
// # CLI Flag 映射
//
// 仅将 "." 替换为 "-"：
//   - network.template → --network-template
//   - log.level → --log-level
//
// # 模板展开
//
// 配置文件内容在解析前经过 [templexp.ExpandTemplate]，可引用环境变量：
//
//	network:
//	  species: "${NETWORK_DIR:-.}/network.net"
//
// 使用 [WithoutTemplateExpansion] 可禁用该行为。
package cfgm
