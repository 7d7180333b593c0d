package strutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/redrye/core-utils/slug"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		// Core transforms
		"trim":           Trim,
		"lower":          func(s string) string { return Lower(s) },
		"upper":          func(s string) string { return Upper(s) },
		"capitalize":     Capitalize,
		"capitalize_all": CapitalizeAll,
		"camel":          Camel,
		"snake":          Snake,
		"snake_to_camel": SnakeToCamel,
		"words":          Words,
		"title":          Title,
		"slug":           func(s string) string { return slug.Make(s) },

		// Composite transforms for common use cases
		"identifier": func(s string) string {
			return Snake(Trim(s))
		},
		"heading": func(s string) string {
			return Title(Trim(s))
		},
		"trim_lower": func(s string) string {
			return Lower(Trim(s))
		},
		"trim_upper": func(s string) string {
			return Upper(Trim(s))
		},
	}
)

// Register adds a custom transform function to the registry.
func Register(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// TransformStruct applies transformations to struct fields based on their
// `transform` tags, e.g. `transform:"trim,snake"`. Nested structs are
// processed recursively; string pointers and string slices are supported.
// Fields tagged "-" are skipped.
func TransformStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return errors.New("strutil: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("strutil: must pass a pointer to struct")
	}

	return transformStructRecursive(rv)
}

func transformStructRecursive(rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("transform")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag == "" {
				continue
			}
			field.SetString(applyTransforms(field.String(), tag))

		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			if elem.Kind() == reflect.String {
				if tag != "" {
					elem.SetString(applyTransforms(elem.String(), tag))
				}
			} else if elem.Kind() == reflect.Struct {
				if err := transformStructRecursive(elem); err != nil {
					return err
				}
			}

		case reflect.Struct:
			if err := transformStructRecursive(field); err != nil {
				return err
			}

		case reflect.Slice:
			if tag != "" && field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					elem.SetString(applyTransforms(elem.String(), tag))
				}
			}
		}
	}

	return nil
}

func applyTransforms(value string, tag string) string {
	result := value

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		// Length cap special case: max:100
		if rest, ok := strings.CutPrefix(name, "max:"); ok {
			var maxLen int
			_, _ = fmt.Sscanf(rest, "%d", &maxLen)
			if maxLen > 0 {
				result = MaxLength(result, maxLen)
			}
			continue
		}

		if fn, ok := registry[name]; ok {
			result = fn(result)
		}
	}

	return result
}
