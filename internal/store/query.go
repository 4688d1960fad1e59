package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByName      = "name"
	orderByPriority  = "priority"
	orderByCreatedAt = "created_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByName:      "lower(name) ASC",
	orderByPriority:  "CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 ELSE 2 END, lower(name) ASC",
	orderByCreatedAt: "created_at DESC",
}

const defaultOrderBy = "lower(name) ASC"

const baseRestaurantsSelect = `SELECT ` + restaurantColumns + `
FROM restaurants`

const countRestaurantsSelect = "SELECT COUNT(*) FROM restaurants"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a restaurant
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *RestaurantQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR neighborhood ILIKE $%d OR cuisine ILIKE $%d)",
			paramIdx, paramIdx, paramIdx,
		))
		args = append(args, "%"+escapeLike(strings.TrimSpace(*q.Search))+"%")
		paramIdx++
	}

	if q.Neighborhood != nil {
		conditions = append(conditions, fmt.Sprintf("neighborhood = $%d", paramIdx))
		args = append(args, *q.Neighborhood)
		paramIdx++
	}

	if q.Cuisine != nil {
		conditions = append(conditions, fmt.Sprintf("cuisine = $%d", paramIdx))
		args = append(args, *q.Cuisine)
		paramIdx++
	}

	if q.Visited != nil {
		conditions = append(conditions, fmt.Sprintf("visited = $%d", paramIdx))
		args = append(args, *q.Visited)
	}

	if q.MonitoredOnly {
		conditions = append(conditions, "monitor_enabled")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseRestaurantsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countRestaurantsSelect + whereClause

	return dataSQL, countSQL, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}
