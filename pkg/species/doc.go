// Package species 解析物种定义文件并构建有序的物种注册表。
//
// # 文件格式
//
// 每个数据行包含四个以空白分隔的字段：
//
//	# name  shortName  A   Z
//	He4     he4        4   2
//	C12     c12        12  6
//
// "#" 开始的内容直到行尾都是注释，空行被忽略。A 与 Z 按原文保存，不做数值解析。
//
// # 校验语义
//
//  1. 字段数不是 4：记录 [FieldCountError]，该行不进入注册表
//  2. name 与之前的条目重复：记录 [DuplicateSpeciesError]，该行仍然追加到注册表
//  3. 所有错误在一次扫描中累积，[Build] 总是返回已构建的注册表
//
// 第 2 条保留了原有生成器的行为：重复条目被标记为错误，但不会改变后续条目的序号。
// 只要存在任一诊断，[Build] 返回的 error 满足 errors.Is(err, [ErrInvalidDefinition])。
package species
