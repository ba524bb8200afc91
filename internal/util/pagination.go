package util

import "strconv"

const DefaultPageSize = 20

func ParseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Clamp normalizes page/size query values: page floors at 1, size
// falls back to the default outside (0, 100].
func Clamp(page, size int) (page2, size2 int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = DefaultPageSize
	}
	return page, size
}

// Offset converts a clamped page/size pair into the from/limit shape
// the search index expects.
func Offset(page, size int) (from, limit int) {
	page, size = Clamp(page, size)
	return (page - 1) * size, size
}
