package create_booking

import "time"

// expandSeries разворачивает серию в упорядоченный список моментов:
// start, start + 1 день, ... до seriesEnd включительно.
// Шаг — календарный день (AddDate), а не фиксированные 24 часа,
// поэтому время суток сохраняется и при переходе на летнее/зимнее время.
// При seriesEnd == nil возвращает единственный элемент start.
func expandSeries(start time.Time, seriesEnd *time.Time) []time.Time {
	if seriesEnd == nil {
		return []time.Time{start}
	}

	instants := make([]time.Time, 0)
	for i := 0; ; i++ {
		current := start.AddDate(0, 0, i)
		if current.After(*seriesEnd) {
			break
		}
		instants = append(instants, current)
	}

	return instants
}
