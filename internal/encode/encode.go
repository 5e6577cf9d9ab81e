// Package encode renders arbitrary Go values as canonical text.
package encode

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ErrUnencodable is returned for values that have no text form, such as
// functions, channels and cyclic structures.
var ErrUnencodable = errors.New("value cannot be encoded")

// canonical sorts map keys, so maps that differ only in insertion order
// encode identically.
var canonical = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON returns the JSON form of v.
func JSON(v any) (string, error) {
	s, err := canonical.MarshalToString(v)
	if err != nil {
		return "", fmt.Errorf("%w: %T: %w", ErrUnencodable, v, err)
	}
	return s, nil
}

// Display renders v for humans: errors by Error(), Stringers by String(),
// both quoted; anything else by its JSON form, falling back to %v. It
// never fails.
func Display(v any) string {
	if !isNilPointer(v) {
		switch x := v.(type) {
		case error:
			return strconv.Quote(x.Error())
		case fmt.Stringer:
			return strconv.Quote(x.String())
		}
	}
	if s, err := JSON(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Key returns a type-qualified encoding of v. Values of different dynamic
// types never share a key, even when their text forms are equal.
//
// A fmt.Stringer is keyed by String(). Anything else is walked
// structurally: unexported struct fields are included, map entries are
// sorted, pointers are followed and floats keep NaN and infinities.
func Key(v any) (string, error) {
	if s, ok := v.(fmt.Stringer); ok && !isNilPointer(v) {
		return fmt.Sprintf("%T#%q", v, s.String()), nil
	}
	s, err := structural(reflect.ValueOf(v), map[visit]bool{})
	if err != nil {
		return "", fmt.Errorf("%w: %T: %w", ErrUnencodable, v, err)
	}
	return fmt.Sprintf("%T=%s", v, s), nil
}

// Keys encodes an argument list positionally.
func Keys(args ...any) (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := Key(arg)
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", i, err)
		}
		b.WriteString(k)
	}
	b.WriteByte(']')
	return b.String(), nil
}

type visit struct {
	kind reflect.Kind
	ptr  uintptr
}

// structural writes v with a jsoniter stream. Reflection is used instead of
// Marshal because JSON drops unexported fields and rejects NaN and ±Inf,
// which would merge or refuse distinct arguments.
func structural(v reflect.Value, visiting map[visit]bool) (string, error) {
	stream := canonical.BorrowStream(nil)
	defer canonical.ReturnStream(stream)

	if err := writeValue(stream, v, visiting); err != nil {
		return "", err
	}
	return string(stream.Buffer()), nil
}

func writeValue(stream *jsoniter.Stream, v reflect.Value, visiting map[visit]bool) error {
	if !v.IsValid() {
		stream.WriteNil()
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		stream.WriteBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		stream.WriteInt64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		stream.WriteUint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		stream.WriteRaw(strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()))
	case reflect.Complex64, reflect.Complex128:
		stream.WriteRaw(strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()))
	case reflect.String:
		stream.WriteString(v.String())
	case reflect.Interface:
		if v.IsNil() {
			stream.WriteNil()
			return nil
		}
		// dynamic type keeps int(1) and float64(1) apart inside `any` fields
		stream.WriteRaw(v.Elem().Type().String() + "=")
		return writeValue(stream, v.Elem(), visiting)
	case reflect.Pointer:
		if v.IsNil() {
			stream.WriteNil()
			return nil
		}
		return descend(v, visiting, func() error {
			return writeValue(stream, v.Elem(), visiting)
		})
	case reflect.Struct:
		stream.WriteObjectStart()
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(v.Type().Field(i).Name)
			if err := writeValue(stream, v.Field(i), visiting); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	case reflect.Slice:
		if v.IsNil() {
			stream.WriteNil()
			return nil
		}
		if v.Len() == 0 {
			stream.WriteEmptyArray()
			return nil
		}
		return descend(v, visiting, func() error {
			return writeElems(stream, v, visiting)
		})
	case reflect.Array:
		return writeElems(stream, v, visiting)
	case reflect.Map:
		if v.IsNil() {
			stream.WriteNil()
			return nil
		}
		return descend(v, visiting, func() error {
			return writeMap(stream, v, visiting)
		})
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}

// descend guards against cycles through pointers, maps and slices.
func descend(v reflect.Value, visiting map[visit]bool, write func() error) error {
	key := visit{kind: v.Kind(), ptr: v.Pointer()}
	if visiting[key] {
		return fmt.Errorf("cycle through %v", v.Type())
	}
	visiting[key] = true
	defer delete(visiting, key)
	return write()
}

func writeElems(stream *jsoniter.Stream, v reflect.Value, visiting map[visit]bool) error {
	stream.WriteArrayStart()
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			stream.WriteMore()
		}
		if err := writeValue(stream, v.Index(i), visiting); err != nil {
			return err
		}
	}
	stream.WriteArrayEnd()
	return nil
}

func writeMap(stream *jsoniter.Stream, v reflect.Value, visiting map[visit]bool) error {
	type entry struct{ key, value string }
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := structural(iter.Key(), visiting)
		if err != nil {
			return err
		}
		val, err := structural(iter.Value(), visiting)
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: k, value: val})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	stream.WriteObjectStart()
	for i, e := range entries {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteRaw(e.key)
		stream.WriteRaw(":")
		stream.WriteRaw(e.value)
	}
	stream.WriteObjectEnd()
	return nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
