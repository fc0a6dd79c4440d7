// Package templexp 对配置字符串做 Shell 风格的参数展开。
//
// 仅识别 ${...}，不解析裸 $VAR，也不执行命令。配置文件中的路径常依赖构建环境，
// 例如网络目录由环境变量给出：
//
//	network:
//	  template: "${NETWORK_DIR:-networks/general_null}/network.template"
//
// # 语义说明
//
//  1. ${VAR} - 变量值，未设置时为空串
//  2. ${VAR:-word} / ${VAR-word} - 未设置（或为空）时使用 word
//  3. ${VAR:?msg} / ${VAR?msg} - 未设置（或为空）时返回错误
//  4. "$$" 输出字面量 "$"，word 内可继续嵌套 ${...}
//  5. 无法识别的表达式保持原样
package templexp
