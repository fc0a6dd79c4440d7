package species

import "iter"

// Species 单个物种。
type Species struct {
	Name      string `json:"name" yaml:"name"`
	ShortName string `json:"short_name" yaml:"short_name"`
	A         string `json:"a" yaml:"a"`
	Z         string `json:"z" yaml:"z"`
}

// Record 注册表导出条目，Index 从 1 开始。
type Record struct {
	Index   int `json:"index" yaml:"index"`
	Species `json:",inline" yaml:",inline"`
}

// Registry 按首次出现顺序排列的物种列表。
//
// 顺序决定生成代码中的 1 基序号。[Build] 返回后注册表只读。
type Registry struct {
	items []Species
	first map[string]int // name → 首次出现的 1 基序号
}

// NewRegistry 由给定物种直接构建注册表，不做任何校验。
func NewRegistry(items ...Species) *Registry {
	r := &Registry{first: make(map[string]int, len(items))}
	for _, s := range items {
		r.append(s)
	}

	return r
}

func (r *Registry) append(s Species) {
	r.items = append(r.items, s)
	if _, ok := r.first[s.Name]; !ok {
		r.first[s.Name] = len(r.items)
	}
}

// Len 返回条目数量，nil 注册表视为空。
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.items)
}

// At 返回第 i 个条目（1 基）。
func (r *Registry) At(i int) Species {
	return r.items[i-1]
}

// All 按注册顺序遍历 (1 基序号, 物种)。
func (r *Registry) All() iter.Seq2[int, Species] {
	return func(yield func(int, Species) bool) {
		if r == nil {
			return
		}
		for i, s := range r.items {
			if !yield(i+1, s) {
				return
			}
		}
	}
}

// Index 返回 name 首次出现的 1 基序号。
func (r *Registry) Index(name string) (int, bool) {
	if r == nil {
		return 0, false
	}
	idx, ok := r.first[name]

	return idx, ok
}

// Names 按顺序返回全部 name。
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for _, s := range r.All() {
		names = append(names, s.Name)
	}

	return names
}

// Records 返回带序号的导出条目。
func (r *Registry) Records() []Record {
	out := make([]Record, 0, r.Len())
	for i, s := range r.All() {
		out = append(out, Record{Index: i, Species: s})
	}

	return out
}

// MarshalYAML 以条目列表形式输出。
func (r *Registry) MarshalYAML() (any, error) {
	return r.Records(), nil
}
