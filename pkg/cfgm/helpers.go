package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

func configTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// collectConfigKeys 收集叶子配置 key（如 network.template）及其字段类型。
func collectConfigKeys(typ reflect.Type) map[string]reflect.Type {
	keys := make(map[string]reflect.Type)

	var walk func(t reflect.Type, prefix string)
	walk = func(t reflect.Type, prefix string) {
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		for i := range t.NumField() {
			field := t.Field(i)
			key := configTagName(field)
			if key == "" || !field.IsExported() {
				continue
			}
			if prefix != "" {
				key = prefix + "." + key
			}

			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != durationType {
				walk(ft, key)

				continue
			}
			keys[key] = field.Type
		}
	}
	if typ.Kind() == reflect.Struct || (typ.Kind() == reflect.Pointer && typ.Elem().Kind() == reflect.Struct) {
		walk(typ, "")
	}

	return keys
}

// structToMap 经 JSON 编码将默认配置转为嵌套 map，key 与 json tag 一致。
func structToMap(cfg any) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	switch root := normalizeMapKeys(raw).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return root, nil
	default:
		return nil, errors.New("config root must be object")
	}
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, srcMap)

				continue
			}
		}
		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
