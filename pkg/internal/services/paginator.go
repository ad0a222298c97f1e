package services

import (
	"github.com/plumehq/plume/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Pagination is one bounded slice of an ordered listing plus the metadata
// needed to render "page N of M" with next/previous links.
type Pagination struct {
	Items      []models.Post `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Count      int64         `json:"count"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
}

func PageSize() int {
	size := viper.GetInt("content.page_size")
	if size <= 0 {
		size = 10
	}
	return size
}

// PaginatePosts slices the filtered listing into the requested page.
// Out-of-range page numbers clamp to the nearest valid page instead of
// erroring, so a stale pagination link never 404s. Ordering is always
// newest-first by publication timestamp; every listing view shares it.
func PaginatePosts(tx *gorm.DB, page int) (Pagination, error) {
	size := PageSize()

	count, err := CountPost(tx.Session(&gorm.Session{}))
	if err != nil {
		return Pagination{}, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	items, err := ListPost(tx, size, (page-1)*size)
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Count:      count,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
