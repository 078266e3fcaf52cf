package mock

import (
	"context"

	"github.com/fwojciec/locfeed"
)

var _ locfeed.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of locfeed.DocumentSource.
type DocumentSource struct {
	LoadFn func(ctx context.Context, id string) (string, error)
}

func (s *DocumentSource) Load(ctx context.Context, id string) (string, error) {
	return s.LoadFn(ctx, id)
}
