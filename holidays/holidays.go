// Package holidays lists Spanish national holidays for a given year.
package holidays

import (
	"sort"

	"github.com/rickar/cal/v2/es"
)

type Holiday struct {
	Date    string `json:"date"`
	Holiday string `json:"holiday"`
}

// ForYear returns the national holidays of the year, date ascending.
func ForYear(year int) []Holiday {
	list := make([]Holiday, 0, len(es.Holidays))
	for _, h := range es.Holidays {
		_, observed := h.Calc(year)
		if observed.IsZero() {
			continue
		}
		list = append(list, Holiday{
			Date:    observed.Format("2006-01-02"),
			Holiday: h.Name,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Date < list[j].Date
	})
	return list
}
