package mock

import (
	"context"
	"time"

	"github.com/fwojciec/tldr"
)

var _ tldr.PageIndex = (*PageIndex)(nil)

// PageIndex is a mock implementation of tldr.PageIndex.
type PageIndex struct {
	FindPageFn    func(ctx context.Context, name, platform, language string) (*tldr.Location, error)
	HasPageFn     func(name string) bool
	EntryFn       func(ctx context.Context, name string) (*tldr.PageEntry, error)
	CommandsFn    func(ctx context.Context) ([]string, error)
	CommandsForFn func(ctx context.Context, platform string) ([]string, error)
	RebuildFn     func(ctx context.Context) (tldr.ShortIndex, error)
	ClearFn       func(ctx context.Context) error
	UpdatedAtFn   func(ctx context.Context) (time.Time, error)
}

func (p *PageIndex) FindPage(ctx context.Context, name, platform, language string) (*tldr.Location, error) {
	return p.FindPageFn(ctx, name, platform, language)
}

func (p *PageIndex) HasPage(name string) bool {
	return p.HasPageFn(name)
}

func (p *PageIndex) Entry(ctx context.Context, name string) (*tldr.PageEntry, error) {
	return p.EntryFn(ctx, name)
}

func (p *PageIndex) Commands(ctx context.Context) ([]string, error) {
	return p.CommandsFn(ctx)
}

func (p *PageIndex) CommandsFor(ctx context.Context, platform string) ([]string, error) {
	return p.CommandsForFn(ctx, platform)
}

func (p *PageIndex) Rebuild(ctx context.Context) (tldr.ShortIndex, error) {
	return p.RebuildFn(ctx)
}

func (p *PageIndex) Clear(ctx context.Context) error {
	return p.ClearFn(ctx)
}

func (p *PageIndex) UpdatedAt(ctx context.Context) (time.Time, error) {
	return p.UpdatedAtFn(ctx)
}
