package astro

import (
	"sync"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// rangeWorkers bounds the concurrency of a multi-day calculation. Days
// are independent pure computations, so workers share nothing; results
// land in a pre-allocated slice indexed by day offset, which keeps the
// output ordered without sorting or locking.
const rangeWorkers = 8

// RangeEvents computes one record per UTC calendar day from start to
// end inclusive, in ascending date order.
func RangeEvents(start, end time.Time, coord domain.GeoCoordinate, opts Options) []domain.DayEventRecord {
	days := rangeDays(start, end)
	if days <= 0 {
		return nil
	}

	first := startOfUTCDay(start)
	records := make([]domain.DayEventRecord, days)

	if days == 1 {
		records[0] = DayEvents(first, coord, opts)
		return records
	}

	workers := rangeWorkers
	if days < workers {
		workers = days
	}

	var wg sync.WaitGroup
	indexes := make(chan int)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				records[i] = DayEvents(first.AddDate(0, 0, i), coord, opts)
			}
		}()
	}

	for i := 0; i < days; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return records
}

// rangeDays counts the inclusive number of UTC calendar days covered.
func rangeDays(start, end time.Time) int {
	s := startOfUTCDay(start)
	e := startOfUTCDay(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
