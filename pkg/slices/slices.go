package slices

// Map applies fn to every element of s and returns the resulting slice.
func Map[T any, U any](s []T, fn func(T) U) []U {
	result := make([]U, 0, len(s))

	for _, v := range s {
		result = append(result, fn(v))
	}

	return result
}
