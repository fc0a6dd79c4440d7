// Package netgen 将物种注册表展开到网络模板中，生成最终源文件。
//
// 模板按行处理。包含 "@@" 的行被视为标记行：第一个与最后一个 "@@" 之间的文本为关键字，
// 第一个 "@@" 之前的字符为缩进，会原样复制到每一条生成语句之前。
//
// # 关键字
//
//   - @@NSPEC@@ - 原地替换为物种数量，行内其他文本保持不变
//   - @@SPEC_NAMES@@ - 每个物种一行：spec_names(i) = "name"
//   - @@SHORT_SPEC_NAMES@@ - 每个物种一行：short_spec_names(i) = "shortName"
//   - @@AION@@ - 每个物种一行：aion(i) = A
//   - @@ZION@@ - 每个物种一行：zion(i) = Z
//
// 未知关键字所在的行被丢弃；启用 [WithStrict] 后改为返回 [ErrUnknownKeyword]。
//
// # 失败产物
//
// 物种定义有误或输入文件缺失时，[Generator] 用 [FailureMessage] 覆盖输出文件。
// 该内容不是合法源码，下游编译会直接失败，而不是使用过期或空的生成文件。
//
// # 快速开始
//
//	gen := netgen.NewGenerator()
//	err := gen.Run(ctx, netgen.Paths{
//	    Template: "network_properties.template",
//	    Species:  "network.net",
//	    Output:   "network_properties.F90",
//	})
package netgen
