package content

import "context"

// RemoteItem is one record returned by the remote content endpoint.
type RemoteItem struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// Source fetches raw items from a remote endpoint. Implementations report
// failures as *NetworkError.
type Source interface {
	FetchItems(ctx context.Context) ([]RemoteItem, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]RemoteItem, error)

// FetchItems implements Source.
func (f SourceFunc) FetchItems(ctx context.Context) ([]RemoteItem, error) {
	return f(ctx)
}
