package storage

// Storage defines a sink for computed report summaries.
type Storage interface {
	PutSummaries(records []interface{}) error
}

// Records converts a typed slice for PutSummaries.
func Records[T any](items []T) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
