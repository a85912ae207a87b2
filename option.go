package svgpath

// option is an optional value.
type option[T any] struct {
	isSet bool
	value T
}

func some[T any](v T) option[T] {
	return option[T]{isSet: true, value: v}
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt option[T]) get() (T, bool) {
	return opt.value, opt.isSet
}
