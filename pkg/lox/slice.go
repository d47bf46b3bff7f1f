package lox

// Map в отличие от lo.Map не передаёт индекс в iteratee, что позволяет
// передавать конвертеры напрямую.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
