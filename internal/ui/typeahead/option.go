package typeahead

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultLabelKey is the field read when Config.LabelKey is empty.
const DefaultLabelKey = "label"

// Labeler is implemented by options that resolve their own labels.
type Labeler interface {
	Label(key string) (string, bool)
}

// LabelOf reads the label of option under key. Maps are indexed by key,
// structs are read by field name or json tag, pointers are followed and
// plain strings label themselves. ok is false when the label is missing.
func LabelOf(option any, key string) (string, bool) {
	if l, ok := option.(Labeler); ok {
		return l.Label(key)
	}

	v := reflect.ValueOf(option)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return "", false
		}
		val := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !val.IsValid() {
			return "", false
		}
		return stringify(val)
	case reflect.Struct:
		f, ok := structField(v, key)
		if !ok {
			return "", false
		}
		return stringify(f)
	default:
		return "", false
	}
}

func structField(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	if sf, ok := t.FieldByName(key); ok && sf.IsExported() {
		return v.FieldByIndex(sf.Index), true
	}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func stringify(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	if !v.CanInterface() {
		return "", false
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	return fmt.Sprint(v.Interface()), true
}

// label is LabelOf with missing labels rendered empty.
func label(option any, key string) string {
	s, _ := LabelOf(option, key)
	return s
}

// sameSelection compares selections structurally.
func sameSelection[T any](a, b []T) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
