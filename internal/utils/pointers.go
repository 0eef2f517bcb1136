package utils

import "strings"

func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

func Ptr[T any](v T) *T {
	return &v
}

// FormField returns a pointer to the trimmed value when the field was
// submitted at all, nil otherwise. An empty submitted field is kept so it can
// clear the stored value.
func FormField(values map[string][]string, name string) *string {
	v, ok := values[name]
	if !ok || len(v) == 0 {
		return nil
	}
	return Ptr(strings.TrimSpace(v[0]))
}
