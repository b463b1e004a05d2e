package validation

import (
	"reflect"
	"strings"
)

// fieldName maps a struct field to its form or json key
func fieldName(s any, structField string) string {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	for _, tag := range []string{"form", "json"} {
		if v := f.Tag.Get(tag); v != "" {
			return strings.Split(v, ",")[0]
		}
	}
	return strings.ToLower(structField)
}
