// Package board derives the admin kanban view from a fetched order list:
// search, date window and sort compose as pure functions so the UI layer can
// re-run them on every keystroke without touching the database.
package board

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thesuplementos/loja-api/models"
)

type DateFilter string

const (
	DateAll    DateFilter = "all"
	DateToday  DateFilter = "today"
	Date7Days  DateFilter = "7d"
	Date30Days DateFilter = "30d"
)

type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

func ParseDateFilter(s string) DateFilter {
	switch DateFilter(s) {
	case DateToday, Date7Days, Date30Days:
		return DateFilter(s)
	default:
		return DateAll
	}
}

func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortOldest, SortHighest, SortLowest:
		return SortOrder(s)
	default:
		return SortNewest
	}
}

func (f DateFilter) window() time.Duration {
	switch f {
	case DateToday:
		return 24 * time.Hour
	case Date7Days:
		return 7 * 24 * time.Hour
	case Date30Days:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// Filter applies search, date window and sort over the fetched orders. The
// search query matches the order id or any item name, case-insensitively; the
// date window is measured against now.
func Filter(orders []models.Order, query string, dateFilter DateFilter, sortOrder SortOrder, now time.Time) []models.Order {
	result := make([]models.Order, 0, len(orders))

	q := strings.ToLower(strings.TrimSpace(query))
	cutoff := time.Time{}
	if window := dateFilter.window(); window > 0 {
		cutoff = now.Add(-window)
	}

	for _, order := range orders {
		if q != "" && !matches(order, q) {
			continue
		}
		if !cutoff.IsZero() && order.CreatedAt.Before(cutoff) {
			continue
		}
		result = append(result, order)
	}

	sort.SliceStable(result, func(i, j int) bool {
		switch sortOrder {
		case SortOldest:
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		case SortHighest:
			return result[i].Total > result[j].Total
		case SortLowest:
			return result[i].Total < result[j].Total
		default:
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
	})

	return result
}

func matches(order models.Order, q string) bool {
	if strings.Contains(strconv.FormatUint(uint64(order.ID), 10), q) {
		return true
	}
	items, err := order.ItemList()
	if err != nil {
		return false
	}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			return true
		}
	}
	return false
}

// GroupByStatus splits filtered orders into the kanban columns. Every status
// gets a key even when its column is empty.
func GroupByStatus(orders []models.Order) map[string][]models.Order {
	columns := make(map[string][]models.Order, len(models.Statuses))
	for _, status := range models.Statuses {
		columns[status] = []models.Order{}
	}
	for _, order := range orders {
		columns[order.Status] = append(columns[order.Status], order)
	}
	return columns
}

// NextStatus returns the state the advance action moves to. Delivered and
// cancelled are terminal for advancing; any state remains reachable through a
// direct status set.
func NextStatus(current string) (string, bool) {
	switch current {
	case models.StatusPending:
		return models.StatusConfirmed, true
	case models.StatusConfirmed:
		return models.StatusDelivered, true
	default:
		return "", false
	}
}
