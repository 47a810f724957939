package tlv

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"

	"github.com/moov-io/bertlv"
)

var unknownSliceType = reflect.TypeOf([]bertlv.TLV{})

// WriteStructFields renders the populated fields of a tag-annotated struct
// as report lines. Empty fields are elided. Lines are joined with newlines
// without a trailing one, so callers can embed the block mid-report; when
// the builder already holds content a separating newline is prepended.
func WriteStructFields(sb *strings.Builder, prefix string, s interface{}) {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}

	typ := val.Type()
	var lines []string

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		switch {
		case field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.Uint8:
			if line := byteFieldLine(prefix, field, typ.Field(i)); line != "" {
				lines = append(lines, line)
			}
		case field.Type() == unknownSliceType:
			lines = append(lines, unknownTagLines(prefix, field)...)
		}
	}

	if len(lines) == 0 {
		return
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Join(lines, "\n"))
}

func byteFieldLine(prefix string, field reflect.Value, ft reflect.StructField) string {
	if field.IsNil() || field.Len() == 0 {
		return ""
	}

	name := ft.Name
	if tag := ft.Tag.Get("tlv"); tag != "" {
		name = fmt.Sprintf("%s (%s)", name, tag)
	}

	return fmt.Sprintf("    - %s.%s: %s", prefix, name, renderBytes(field.Bytes(), ft.Tag.Get("fmt")))
}

func unknownTagLines(prefix string, field reflect.Value) []string {
	if field.IsNil() || field.Len() == 0 {
		return nil
	}

	var lines []string
	for _, t := range field.Interface().([]bertlv.TLV) {
		val := strings.ToUpper(hex.EncodeToString(t.Value))
		lines = append(lines, fmt.Sprintf("    - %s.Unknown Tag %s: %s", prefix, t.Tag, val))
	}
	return lines
}

// renderBytes formats a field per its fmt tag: "ascii" appends a printable
// rendition, "int" a big-endian decimal, anything else is plain hex.
func renderBytes(data []byte, format string) string {
	switch format {
	case "ascii":
		return fmt.Sprintf("%X (%q)", data, MakeSafeASCII(data))
	case "int":
		n := 0
		for _, b := range data {
			n = n<<8 | int(b)
		}
		return fmt.Sprintf("%X (Dec: %d)", data, n)
	default:
		return strings.ToUpper(hex.EncodeToString(data))
	}
}

// MakeSafeASCII replaces non-printable bytes with dots.
func MakeSafeASCII(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 && r <= 126 {
			return r
		}
		return '.'
	}, string(data))
}
