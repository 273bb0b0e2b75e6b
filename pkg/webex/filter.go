package webex

// filterExact keeps the items whose field exactly equals want. The remote API
// has no exact-match query filter for titles and names, so list methods apply
// this on the client side. An empty want keeps everything.
func filterExact[T any](items []*T, field func(*T) string, want string) []*T {
	if want == "" {
		return items
	}
	filtered := make([]*T, 0, len(items))
	for _, item := range items {
		if field(item) == want {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
