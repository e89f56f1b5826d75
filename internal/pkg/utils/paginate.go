package utils

import (
	"fmt"
	"math"
)

// PageInfo describes one page of an in-memory list.
type PageInfo struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Showing    string
}

// Paginate slices items for a 1-based page. Out-of-range pages yield an empty slice.
func Paginate[T any](items []T, page, limit int) ([]T, PageInfo) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(items)
		if limit == 0 {
			limit = 1
		}
	}

	total := len(items)
	info := PageInfo{
		TotalCount: int64(total),
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	// Compared by division so a huge page cannot overflow the offset.
	if page-1 >= (total+limit-1)/limit {
		if total == 0 {
			info.Showing = "0 of 0"
		} else {
			info.Showing = fmt.Sprintf("0 of %d", total)
		}
		return []T{}, info
	}

	start := (page - 1) * limit
	end := min(start+limit, total)
	info.Showing = fmt.Sprintf("%d-%d of %d", start+1, end, total)
	return items[start:end], info
}
