// Package pretty renders arbitrary values into the display strings used by
// inspection failure messages.
package pretty

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Formatter renders one value into a display string.
type Formatter interface {
	Format(v any) string
}

type defaultFormatter struct{}

var current Formatter = defaultFormatter{}

// SetFormatter replaces the Formatter used by Format. Passing nil restores
// the default.
func SetFormatter(f Formatter) {
	if f == nil {
		current = defaultFormatter{}
		return
	}
	current = f
}

// Format renders v using the current Formatter.
func Format(v any) string { return current.Format(v) }

func (defaultFormatter) Format(v any) string { return format(reflect.ValueOf(v)) }

// format walks the value by kind: strings quoted, sequences bracketed,
// maps braced in sorted rendered-key order, structs as JSON, everything
// else via fmt. Stringer and error take precedence.
func format(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	if rv.CanInterface() {
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		if err, ok := rv.Interface().(error); ok {
			return err.Error()
		}
	}
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = format(rv.Index(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		entries := make([][2]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			entries = append(entries, [2]string{format(k), format(rv.MapIndex(k))})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i][0] < entries[j][0] })
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = e[0] + ": " + e[1]
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return format(rv.Elem())
	case reflect.Struct:
		b, err := json.Marshal(rv.Interface())
		if err != nil {
			return fmt.Sprintf("%+v", rv.Interface())
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", rv.Interface())
	}
}
