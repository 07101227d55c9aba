package handler

import (
	"reflect"
	"strings"
)

// sanitize trims whitespace from all string fields in a struct except the
// named fields. Secrets keep their exact bytes.
func sanitize(v any, skip ...string) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return
	}

	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}

	t := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() || skipped[t.Field(i).Name] {
			continue
		}
		if field.Kind() == reflect.String {
			field.SetString(strings.TrimSpace(field.String()))
		}
	}
}
