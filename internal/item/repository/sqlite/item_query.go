package sqlite

import (
	"strings"

	repo "home-inventory/internal/item/repository"
)

// defaultOrder gives every listing a stable, restartable order: creation
// time ascending with the id as tie-break.
const defaultOrder = "created_at ASC, id ASC"

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListItems.
// All non-zero options are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	// Filters
	if opt.Room != "" {
		conditions = append(conditions, "room = ?")
		args = append(args, opt.Room)
	}
	if opt.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.FavoriteOnly {
		conditions = append(conditions, "favorite = 1")
	}
	if opt.Keyword != "" {
		pattern := "%" + strings.ToLower(opt.Keyword) + "%"
		conditions = append(conditions,
			"(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(room) LIKE ? OR LOWER(category) LIKE ?)")
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = defaultOrder
	}
	parts = append(parts, "ORDER BY "+orderBy)

	// Truncation
	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
