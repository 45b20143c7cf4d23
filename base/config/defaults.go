// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"reflect"
	"strconv"

	"cogentcore.org/readmore/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Nested structs are
// set recursively. Errors are automatically logged in addition
// to being returned.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.Log(errors.Errorf("config.SetFromDefaults: expected a non-nil pointer, got %T", cfg))
	}
	return errors.Log(setFromDefaultTags(v.Elem()))
}

func setFromDefaultTags(v reflect.Value) error {
	if v.Kind() != reflect.Struct {
		return nil
	}
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaultTags(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setFromString(fv, def); err != nil {
			errs = append(errs, errors.Errorf("field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// setFromString sets the given settable value from its string representation.
func setFromString(v reflect.Value, s string) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
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
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return errors.Errorf("unsupported default for kind %v", v.Kind())
	}
	return nil
}
