package streak

import (
	"sort"
	"time"

	"github.com/julianstephens/prodhub/internal/constants"
)

// Compute returns the length of the run of consecutive calendar days
// ending at the most recent date in the set. The run ends at the most
// recent *recorded* day, not necessarily today: if today was un-marked,
// the result reflects whatever run the remaining dates still form.
//
// Dates are YYYY-MM-DD strings; duplicates and unparseable entries are
// ignored. An empty set yields 0.
func Compute(dates []string) int {
	days := make([]int64, 0, len(dates))
	seen := make(map[int64]bool, len(dates))
	for _, d := range dates {
		t, err := time.Parse(constants.DateFormat, d)
		if err != nil {
			continue
		}
		ord := t.Unix() / 86400
		if !seen[ord] {
			seen[ord] = true
			days = append(days, ord)
		}
	}

	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	count := 1
	for i := 0; i < len(days)-1; i++ {
		if days[i]-days[i+1] != 1 {
			break
		}
		count++
	}
	return count
}
