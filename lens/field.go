package lens

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/fp_ive_go/internal/typed"
	"github.com/on-the-ground/fp_ive_go/option"
)

var (
	ErrMissingField      = errors.New("missing field")
	ErrFieldType         = errors.New("field type mismatch")
	ErrUnexportedField   = errors.New("unexported field")
	ErrUnsupportedRecord = errors.New("unsupported record type")
)

type recordKind int

const (
	structRecord recordKind = iota
	mapRecord
)

// Field addresses the field name of records of type S, holding an A.
//
// S is either a struct type, where name is an exported (possibly promoted)
// field, or a map with string keys, where name is a key. Records are never
// mutated: setters copy structs by value and clone maps, sharing every
// other field or entry with the input.
type Field[S, A any] struct {
	name   string
	kind   recordKind
	index  []int
	mapKey reflect.Value
}

// NewField validates name against S and A.
func NewField[S, A any](name string) (Field[S, A], error) {
	sType := reflect.TypeFor[S]()
	aType := reflect.TypeFor[A]()
	f := Field[S, A]{name: name}

	switch {
	case sType.Kind() == reflect.Struct:
		sf, ok := sType.FieldByName(name)
		if !ok {
			return f, fmt.Errorf("%w: %v has no field %q", ErrMissingField, sType, name)
		}
		if !sf.IsExported() {
			return f, fmt.Errorf("%w: %v.%s", ErrUnexportedField, sType, name)
		}
		if !aType.AssignableTo(sf.Type) {
			return f, fmt.Errorf("%w: %v.%s is %v, not %v", ErrFieldType, sType, name, sf.Type, aType)
		}
		if throughPointer(sType, sf.Index) {
			return f, fmt.Errorf("%w: %v.%s is promoted through a pointer", ErrUnsupportedRecord, sType, name)
		}
		f.kind = structRecord
		f.index = sf.Index
	case sType.Kind() == reflect.Map && sType.Key().Kind() == reflect.String:
		if !aType.AssignableTo(sType.Elem()) {
			return f, fmt.Errorf("%w: %v holds %v, not %v", ErrFieldType, sType, sType.Elem(), aType)
		}
		f.kind = mapRecord
		f.mapKey = reflect.ValueOf(name).Convert(sType.Key())
	default:
		return f, fmt.Errorf("%w: %v", ErrUnsupportedRecord, sType)
	}
	return f, nil
}

// MustField is the panic-on-failure variant of NewField.
func MustField[S, A any](name string) Field[S, A] {
	f, err := NewField[S, A](name)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Field[S, A]) Name() string {
	return f.name
}

// Get reads the field. It fails with ErrMissingField when a map record
// lacks the key and with ErrFieldType when the stored value is not an A.
func (f Field[S, A]) Get(s S) (A, error) {
	var zero A
	raw, ok := f.lookup(s)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrMissingField, f.name)
	}
	v, err := typed.As[A](raw.Interface())
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrFieldType, f.name, err)
	}
	return v, nil
}

// MustGet is the panic-on-failure variant of Get.
func (f Field[S, A]) MustGet(s S) A {
	v, err := f.Get(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MaybeGet reads the field, returning None where Get would fail.
func (f Field[S, A]) MaybeGet(s S) option.Option[A] {
	v, err := f.Get(s)
	if err != nil {
		return option.None[A]()
	}
	return option.Some(v)
}

// Set returns a copy of s with the field set to a.
func (f Field[S, A]) Set(s S, a A) S {
	av := reflect.ValueOf(&a).Elem()
	switch f.kind {
	case structRecord:
		cp := reflect.New(reflect.TypeFor[S]()).Elem()
		cp.Set(reflect.ValueOf(&s).Elem())
		cp.FieldByIndex(f.index).Set(av)
		return cp.Interface().(S)
	default:
		src := reflect.ValueOf(&s).Elem()
		cp := reflect.MakeMapWithSize(src.Type(), src.Len()+1)
		iter := src.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), iter.Value())
		}
		cp.SetMapIndex(f.mapKey, av)
		return cp.Interface().(S)
	}
}

// Change is an alias of Set.
func (f Field[S, A]) Change(s S, a A) S {
	return f.Set(s, a)
}

// Map replaces the field with fn applied to its current value.
func (f Field[S, A]) Map(s S, fn func(A) A) (S, error) {
	cur, err := f.Get(s)
	if err != nil {
		return s, err
	}
	return f.Set(s, fn(cur)), nil
}

func (f Field[S, A]) lookup(s S) (reflect.Value, bool) {
	rv := reflect.ValueOf(&s).Elem()
	if f.kind == structRecord {
		return rv.FieldByIndex(f.index), true
	}
	if rv.IsNil() {
		return reflect.Value{}, false
	}
	v := rv.MapIndex(f.mapKey)
	return v, v.IsValid()
}

func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		if t.Kind() == reflect.Pointer {
			return true
		}
	}
	return false
}
