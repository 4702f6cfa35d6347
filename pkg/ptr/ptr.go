package ptr

// Ptr возвращает указатель на копию значения
func Ptr[T any](v T) *T {
	return &v
}

// NonEmpty возвращает указатель на строку или nil, если строка пустая
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref возвращает значение по указателю или нулевое значение для nil
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
