package mock

import (
	"context"

	"github.com/fwojciec/documind"
)

var _ documind.Loader = (*Loader)(nil)

// Loader is a mock implementation of documind.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, url string) (*documind.RawPage, error)
}

func (l *Loader) Load(ctx context.Context, url string) (*documind.RawPage, error) {
	return l.LoadFn(ctx, url)
}
