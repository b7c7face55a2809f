package coinmarketcap

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	timeType            = reflect.TypeOf(time.Time{})
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	stringerType        = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

//
// EncodeQuery serializes the exported fields of the provided parameter struct (or pointer to one)
// into query parameters. Field names are transliterated from Pascal-case to lower-snake-case (e.g.
// "TimeStart" becomes "time_start" and "CMCRank" becomes "cmc_rank"). Zero values, nil pointers,
// and empty slices are treated as unset and omitted. Fields tagged `query:"-"` are skipped.
//
// Slices are joined with commas, times are rendered as RFC 3339 in UTC (with fractional seconds
// when present), and any value that implements encoding.TextMarshaler or fmt.Stringer is rendered
// through that interface. A slice element that itself renders with a comma is rejected, since it
// could not be told apart from two elements.
//
func EncodeQuery(params any) (url.Values, error) {
	values := url.Values{}

	if params == nil {
		return values, nil
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return values, nil
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot encode %s as query parameters", v.Type())
	}

	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.PkgPath != "" || field.Tag.Get("query") == "-" {
			continue
		}

		fv := v.Field(i)

		if fv.IsZero() || (fv.Kind() == reflect.Slice && fv.Len() == 0) {
			continue
		}

		s, err := formatQueryValue(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		values.Set(SnakeCase(field.Name), s)
	}

	return values, nil
}

//
// DecodeQuery is the inverse of EncodeQuery. It populates the exported fields of the struct pointed
// to by dst from the provided query parameters, using the same field name transliteration. Keys
// with no matching field are ignored.
//
func DecodeQuery(values url.Values, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cannot decode query parameters into %T", dst)
	}

	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.PkgPath != "" || field.Tag.Get("query") == "-" {
			continue
		}

		key := SnakeCase(field.Name)

		if _, ok := values[key]; !ok {
			continue
		}

		if err := parseQueryValue(v.Field(i), values.Get(key)); err != nil {
			return fmt.Errorf("parameter %s: %w", key, err)
		}
	}

	return nil
}

//
// SnakeCase transliterates a Pascal-case (or camel-case) identifier into lower-snake-case. Runs of
// capitals are treated as a single acronym word, so "CMCRank" becomes "cmc_rank" and "ID" becomes
// "id". Digits never start a new word.
//
func SnakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder

	b.Grow(len(name) + 4)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)

			continue
		}

		if i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func formatQueryValue(v reflect.Value) (string, error) {
	if v.Kind() == reflect.Ptr {
		return formatQueryValue(v.Elem())
	}

	if v.Type() == timeType {
		return v.Interface().(time.Time).UTC().Format(time.RFC3339Nano), nil
	}

	if v.Type().Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}

		return string(text), nil
	}

	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil

	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil

	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), nil

	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())

		for i := 0; i < v.Len(); i++ {
			s, err := formatQueryValue(v.Index(i))
			if err != nil {
				return "", err
			}

			if strings.Contains(s, ",") {
				return "", fmt.Errorf("element %q contains a comma", s)
			}

			parts[i] = s
		}

		return strings.Join(parts, ","), nil
	}

	return "", fmt.Errorf("unsupported query parameter type %s", v.Type())
}

func parseQueryValue(v reflect.Value, s string) error {
	if v.Kind() == reflect.Ptr {
		elem := reflect.New(v.Type().Elem())

		if err := parseQueryValue(elem.Elem(), s); err != nil {
			return err
		}

		v.Set(elem)

		return nil
	}

	if v.Type() == timeType {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}

		v.Set(reflect.ValueOf(t))

		return nil
	}

	if v.CanAddr() && v.Addr().Type().Implements(textUnmarshalerType) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)

	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}

		v.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}

		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}

		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}

		v.SetFloat(f)

	case reflect.Slice:
		parts := strings.Split(s, ",")
		slice := reflect.MakeSlice(v.Type(), len(parts), len(parts))

		for i, part := range parts {
			if err := parseQueryValue(slice.Index(i), part); err != nil {
				return err
			}
		}

		v.Set(slice)

	default:
		return fmt.Errorf("unsupported query parameter type %s", v.Type())
	}

	return nil
}
