package quotes

import "time"

var catalog = []string{
	"The secret of getting ahead is getting started.",
	"Focus on being productive instead of busy.",
	"The way to get started is to quit talking and begin doing.",
	"Don't watch the clock; do what it does. Keep going.",
	"You don't have to be great to start, but you have to start to be great.",
}

// Daily returns the quote for the given day, rotating through the catalog
// by day of year so the whole day shows the same quote.
func Daily(now time.Time) string {
	return catalog[now.YearDay()%len(catalog)]
}
