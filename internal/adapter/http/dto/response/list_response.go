package response

// ListEnvelope wraps collection payloads so clients get the total without
// counting the page themselves.
type ListEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func NewListEnvelope[T any](items []T) ListEnvelope[T] {
	if items == nil {
		items = []T{}
	}
	return ListEnvelope[T]{Data: items, Total: len(items)}
}
