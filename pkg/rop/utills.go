package rop

import "reflect"

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Require panics with an IllegalArgument error when v is nil
func Require(v interface{}, name string) {
	if IsNil(v) {
		panic(IllegalArgument.New("%s must not be nil", name))
	}
}

// ValuesEqual compares two held values the way Result.Equal does
func ValuesEqual(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

// ValuesSame compares two held values the way Result.Same does: reference kinds
// must point at the same memory, comparable values must be ==.
func ValuesSame(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}
