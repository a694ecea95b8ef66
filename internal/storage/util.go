package storage

func removeOldest[T any](m map[string]T, createdAtFunc func(T) int64) {
	var oldestKey string
	var oldestCreatedAt int64
	first := true

	for key, value := range m {
		createdAt := createdAtFunc(value)
		if first || createdAt < oldestCreatedAt {
			oldestKey = key
			oldestCreatedAt = createdAt
			first = false
		}
	}

	delete(m, oldestKey)
}
