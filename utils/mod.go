package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

func Sum(slice []int) int {
	total := 0
	for _, v := range slice {
		total += v
	}
	return total
}

// Reversed returns a reversed copy, leaving the input untouched.
func Reversed[T any](slice []T) []T {
	out := make([]T, len(slice))
	for i, v := range slice {
		out[len(slice)-1-i] = v
	}
	return out
}
