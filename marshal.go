// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bflat

import (
	"fmt"
	"reflect"
	"strings"
)

// StructMarshal builds a Document from the exported fields of a struct (or
// pointer to struct) and encodes it, as a convenience layer over the
// lower-level Document/Encode API for callers whose mapping is naturally a
// Go struct.
//
// Fields are named by a `bflat:"name"` tag, or by the field name if no tag
// is present. A tag of "-" skips the field. Zero-valued fields are encoded
// like any other value; BFlat has no notion of "omitempty" because Null is
// itself a distinct wire value (see NullValue).
//
// Supported field types: bool, the signed/unsigned/floating numeric kinds,
// string, []byte, and slices of the integer, floating and string kinds
// (encoded as a homogeneous array — see Value's array constructors). Slices
// of bool and of []byte are not supported. A field of any unsupported kind
// returns an error.
func StructMarshal(v interface{}) ([]byte, error) {
	doc, err := marshalDocument(v)
	if err != nil {
		return nil, err
	}
	return Encode(doc)
}

func marshalDocument(v interface{}) (*Document, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("bflat: cannot marshal nil %T", v)
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("bflat: cannot marshal %T, want struct", v)
	}

	fields, err := structFields(val.Type())
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for _, f := range fields {
		fv, err := marshalField(val.FieldByIndex(f.index))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.name, err)
		}
		doc.Put([]byte(f.name), fv)
	}
	return doc, nil
}

func marshalField(fv reflect.Value) (Value, error) {
	switch fv.Kind() {
	case reflect.Bool:
		return BoolValue(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(fv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IntValue(int64(fv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return FloatValue(fv.Float()), nil
	case reflect.String:
		return StringValue(fv.String()), nil
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			return BinaryValue(fv.Bytes()), nil
		}
		return marshalSliceField(fv)
	default:
		return Value{}, fmt.Errorf("unsupported kind %v", fv.Kind())
	}
}

func marshalSliceField(fv reflect.Value) (Value, error) {
	n := fv.Len()
	if n == 0 {
		return emptyArrayOf(fv.Type().Elem().Kind())
	}
	first := fv.Index(0)
	switch first.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ns := make([]int64, n)
		for i := 0; i < n; i++ {
			ns[i] = signedOf(fv.Index(i))
		}
		return IntArrayValue(ns), nil
	case reflect.Float32, reflect.Float64:
		fs := make([]float64, n)
		for i := 0; i < n; i++ {
			fs[i] = fv.Index(i).Float()
		}
		return FloatArrayValue(fs), nil
	case reflect.String:
		ss := make([]string, n)
		for i := 0; i < n; i++ {
			ss[i] = fv.Index(i).String()
		}
		return StringArrayValue(ss), nil
	default:
		return Value{}, fmt.Errorf("unsupported slice element kind %v", first.Kind())
	}
}

func emptyArrayOf(elemKind reflect.Kind) (Value, error) {
	switch elemKind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IntArrayValue(nil), nil
	case reflect.Float32, reflect.Float64:
		return FloatArrayValue(nil), nil
	case reflect.String:
		return StringArrayValue(nil), nil
	default:
		return Value{}, fmt.Errorf("unsupported slice element kind %v", elemKind)
	}
}

func signedOf(v reflect.Value) int64 {
	if v.Kind() >= reflect.Uint && v.Kind() <= reflect.Uint64 {
		return int64(v.Uint())
	}
	return v.Int()
}

type structField struct {
	name  string
	index []int
}

// structFields extracts the bflat-tagged (or name-defaulted) exported
// fields of a struct type, in declaration order.
func structFields(t reflect.Type) ([]structField, error) {
	var fields []structField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("bflat"); ok {
			if tag == "-" {
				continue
			}
			if parts := strings.SplitN(tag, ",", 2); parts[0] != "" {
				name = parts[0]
			}
		}
		fields = append(fields, structField{name: name, index: sf.Index})
	}
	return fields, nil
}
