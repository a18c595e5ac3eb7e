package event

// FilterRange returns the days whose date lies within r, preserving feed order.
// The input slice is not modified.
func FilterRange(days []EventDay, r DateRange) []EventDay {
	filtered := make([]EventDay, 0)
	for _, day := range days {
		if r.Contains(day.Date) {
			filtered = append(filtered, day)
		}
	}
	return filtered
}
