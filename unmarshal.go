// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import (
	"fmt"
	"reflect"
)

// StructUnmarshal decodes data and populates the exported fields of the
// struct pointed to by v, using the same field-naming rules as
// StructMarshal (a `bflat:"name"` tag, or the field name).
//
// A key present in the decoded Mapping but not matching any field is
// ignored. A field whose key is absent from the Mapping is left at its
// zero value. A value whose Kind (or, for an array field, ElemKind) does
// not match the field's Go type returns an error; StructUnmarshal does not
// attempt lossy numeric conversion beyond widening into the field's width.
func StructUnmarshal(data []byte, v interface{}) error {
	m, err := Decode(data)
	if err != nil {
		return err
	}
	return unmarshalDocument(m, v)
}

func unmarshalDocument(m *Mapping, v interface{}) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("bflat: StructUnmarshal needs a non-nil pointer, got %T", v)
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("bflat: cannot unmarshal into %T, want pointer to struct", v)
	}

	fields, err := structFields(val.Type())
	if err != nil {
		return err
	}
	for _, f := range fields {
		mv, ok := m.Get([]byte(f.name))
		if !ok {
			continue
		}
		fv := val.FieldByIndex(f.index)
		if err := unmarshalField(mv, fv); err != nil {
			return fmt.Errorf("field %q: %w", f.name, err)
		}
	}
	return nil
}

func unmarshalField(mv Value, fv reflect.Value) error {
	if mv.IsArray() {
		return unmarshalSliceField(mv, fv)
	}
	switch fv.Kind() {
	case reflect.Bool:
		if mv.Kind != KindInt {
			return fmt.Errorf("value is %v, want int (for bool)", mv.Kind)
		}
		fv.SetBool(mv.Int != 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if mv.Kind != KindInt {
			return fmt.Errorf("value is %v, want int", mv.Kind)
		}
		fv.SetInt(mv.Int)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if mv.Kind != KindInt {
			return fmt.Errorf("value is %v, want int", mv.Kind)
		}
		fv.SetUint(uint64(mv.Int))
	case reflect.Float32, reflect.Float64:
		if mv.Kind != KindFloat {
			return fmt.Errorf("value is %v, want float", mv.Kind)
		}
		fv.SetFloat(mv.Float)
	case reflect.String:
		if mv.Kind != KindString {
			return fmt.Errorf("value is %v, want string", mv.Kind)
		}
		fv.SetString(string(mv.Bytes))
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			if mv.Kind != KindBinary && mv.Kind != KindString {
				return fmt.Errorf("value is %v, want binary", mv.Kind)
			}
			fv.SetBytes(append([]byte(nil), mv.Bytes...))
			return nil
		}
		return fmt.Errorf("scalar value cannot fill slice field")
	default:
		return fmt.Errorf("unsupported field kind %v", fv.Kind())
	}
	return nil
}

func unmarshalSliceField(mv Value, fv reflect.Value) error {
	if fv.Kind() != reflect.Slice {
		return fmt.Errorf("array value cannot fill non-slice field")
	}
	elemKind := fv.Type().Elem().Kind()
	out := reflect.MakeSlice(fv.Type(), len(mv.Array), len(mv.Array))
	for i, e := range mv.Array {
		ev := out.Index(i)
		switch elemKind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if e.Kind != KindInt {
				return fmt.Errorf("element %d is %v, want int", i, e.Kind)
			}
			ev.SetInt(e.Int)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if e.Kind != KindInt {
				return fmt.Errorf("element %d is %v, want int", i, e.Kind)
			}
			ev.SetUint(uint64(e.Int))
		case reflect.Float32, reflect.Float64:
			if e.Kind != KindFloat {
				return fmt.Errorf("element %d is %v, want float", i, e.Kind)
			}
			ev.SetFloat(e.Float)
		case reflect.String:
			if e.Kind != KindString {
				return fmt.Errorf("element %d is %v, want string", i, e.Kind)
			}
			ev.SetString(string(e.Bytes))
		default:
			return fmt.Errorf("unsupported slice element kind %v", elemKind)
		}
	}
	fv.Set(out)
	return nil
}
