package lox

// Map is lo.Map without the index argument, so method expressions such as
// T.String can be passed directly.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
