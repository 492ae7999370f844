package binding

import (
	"context"
	"reflect"
)

// FormValid reports whether no field of form has recorded errors. A form
// without recorded errors is valid.
func FormValid(ctx context.Context, ns Namespacer, store Store, form string) (bool, error) {
	errs, err := store.Get(ctx, Prefix(ns)+GetterFormErrors)
	if err != nil {
		return false, err
	}
	for _, v := range errs[form] {
		if !emptyErrors(v) {
			return false, nil
		}
	}
	return true, nil
}

// emptyErrors treats nil, false and empty slices as "no errors". Values read
// back from Redis arrive as []any, so the check is reflective.
func emptyErrors(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len() == 0
	}
	return false
}
