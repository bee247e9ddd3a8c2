package thicket

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Decoder reads and decodes parsed values from an input stream into Go
// values via reflection.
type Decoder struct {
	parser *Parser
}

// NewDecoder returns a decoder that reads from r using a default Parser.
// A Decoder has no way to register custom conversion specifiers; for
// those, use NewParser with WithCustomParser and call Parser.Parse.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{parser: NewParser(r)}
}

// Decode parses the input stream and stores the result in the value
// pointed to by v.
func (dec *Decoder) Decode(v any) error {
	out, err := dec.parser.Parse()
	if err != nil {
		return err
	}
	return setValue(v, out)
}

// Unmarshal parses data and stores the result in the value pointed to by
// v. It converts parsed values into Go values with the following
// mappings:
//   - null -> nil
//   - bool -> bool
//   - signed/unsigned integers -> int64/uint64 (or a narrower numeric
//     field type, checked for overflow)
//   - float -> float64
//   - string -> string
//   - list -> []any or a destination slice
//   - map -> *Map, a destination struct, or a destination map
//
// If v is nil or not a pointer, it returns an error.
func Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return errors.New("empty document is undefined")
	}
	dec := NewDecoder(bytes.NewReader(data))
	return dec.Decode(v)
}

func setValue(dst any, src Value) error {
	if dst == nil {
		return errors.New("cannot unmarshal into a nil value")
	}

	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Ptr {
		return errors.New("destination is not a pointer")
	}
	if val.IsNil() {
		return errors.New("destination pointer is nil")
	}

	return setValueReflect(val.Elem(), src)
}

// setValueReflect recursively sets dst from the parsed value src.
func setValueReflect(dst reflect.Value, src Value) error {
	if src.IsNull() {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	if dst.Kind() == reflect.Interface {
		dst.Set(reflect.ValueOf(src.Interface()))
		return nil
	}

	switch dst.Kind() {
	case reflect.Struct:
		return setStruct(dst, src)
	case reflect.Slice:
		return setSlice(dst, src)
	case reflect.Map:
		return setMap(dst, src)
	case reflect.Ptr:
		return setPtr(dst, src)
	case reflect.String:
		return setString(dst, src)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, src)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(dst, src)
	case reflect.Float32, reflect.Float64:
		return setFloat(dst, src)
	case reflect.Bool:
		return setBool(dst, src)
	default:
		return fmt.Errorf("cannot unmarshal %s into %s", src.Kind(), dst.Type())
	}
}

func setStruct(dst reflect.Value, src Value) error {
	m, ok := src.Map()
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into struct", src.Kind())
	}

	structType := dst.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := dst.Field(i)
		if !fieldValue.CanSet() {
			continue
		}

		fieldName := fieldTagName(field)
		if fieldName == "-" {
			continue
		}

		srcValue, ok := m.Get(String(fieldName))
		if !ok {
			continue
		}
		if err := setValueReflect(fieldValue, srcValue); err != nil {
			return fmt.Errorf("error setting field %s: %w", field.Name, err)
		}
	}

	return nil
}

func fieldTagName(field reflect.StructField) string {
	tag := field.Tag.Get("thicket")
	if tag == "" {
		return field.Name
	}
	return tag
}

func setSlice(dst reflect.Value, src Value) error {
	items, ok := src.List()
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into slice", src.Kind())
	}

	sliceType := dst.Type()
	newSlice := reflect.MakeSlice(sliceType, len(items), len(items))
	for i, item := range items {
		if err := setValueReflect(newSlice.Index(i), item); err != nil {
			return fmt.Errorf("error setting slice element %d: %w", i, err)
		}
	}

	dst.Set(newSlice)
	return nil
}

func setMap(dst reflect.Value, src Value) error {
	m, ok := src.Map()
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into map", src.Kind())
	}

	mapType := dst.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("maps with non-string keys are not supported")
	}

	newMap := reflect.MakeMap(mapType)
	for _, entry := range m.Entries() {
		key, ok := entry.Key.String_()
		if !ok {
			return fmt.Errorf("cannot unmarshal %s map key into string", entry.Key.Kind())
		}
		valueValue := reflect.New(mapType.Elem()).Elem()
		if err := setValueReflect(valueValue, entry.Value); err != nil {
			return fmt.Errorf("error setting map value for key %s: %w", key, err)
		}
		newMap.SetMapIndex(reflect.ValueOf(key), valueValue)
	}

	dst.Set(newMap)
	return nil
}

func setPtr(dst reflect.Value, src Value) error {
	newPtr := reflect.New(dst.Type().Elem())
	if err := setValueReflect(newPtr.Elem(), src); err != nil {
		return err
	}
	dst.Set(newPtr)
	return nil
}

func setString(dst reflect.Value, src Value) error {
	s, ok := src.String_()
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into string", src.Kind())
	}
	dst.SetString(s)
	return nil
}

func setInt(dst reflect.Value, src Value) error {
	switch src.Kind() {
	case KindInt:
		v, _ := src.Int()
		if dst.OverflowInt(v) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetInt(v)
		return nil
	case KindUint:
		u, _ := src.Uint()
		v := int64(u)
		if u > (1<<63-1) || dst.OverflowInt(v) {
			return fmt.Errorf("value %d overflows %s", u, dst.Type())
		}
		dst.SetInt(v)
		return nil
	default:
		return fmt.Errorf("cannot unmarshal %s into integer", src.Kind())
	}
}

func setUint(dst reflect.Value, src Value) error {
	switch src.Kind() {
	case KindUint:
		v, _ := src.Uint()
		if dst.OverflowUint(v) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetUint(v)
		return nil
	case KindInt:
		i, _ := src.Int()
		if i < 0 {
			return fmt.Errorf("cannot unmarshal negative value %d into unsigned integer", i)
		}
		v := uint64(i)
		if dst.OverflowUint(v) {
			return fmt.Errorf("value %d overflows %s", v, dst.Type())
		}
		dst.SetUint(v)
		return nil
	default:
		return fmt.Errorf("cannot unmarshal %s into unsigned integer", src.Kind())
	}
}

func setFloat(dst reflect.Value, src Value) error {
	switch src.Kind() {
	case KindFloat:
		f, _ := src.Float()
		if dst.OverflowFloat(f) {
			return fmt.Errorf("value %g overflows %s", f, dst.Type())
		}
		dst.SetFloat(f)
		return nil
	case KindInt:
		i, _ := src.Int()
		dst.SetFloat(float64(i))
		return nil
	case KindUint:
		u, _ := src.Uint()
		dst.SetFloat(float64(u))
		return nil
	default:
		return fmt.Errorf("cannot unmarshal %s into float", src.Kind())
	}
}

func setBool(dst reflect.Value, src Value) error {
	b, ok := src.Bool()
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into bool", src.Kind())
	}
	dst.SetBool(b)
	return nil
}
