package main_test

import (
	"context"
	"errors"
	"testing"

	main "github.com/fwojciec/tldr/cmd/tldr"
	"github.com/fwojciec/tldr/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists pages for the preferred platform", func(t *testing.T) {
		t.Parallel()

		var gotPlatform string
		pages := &mock.PageIndex{
			CommandsForFn: func(_ context.Context, platform string) ([]string, error) {
				gotPlatform = platform
				return []string{"cp", "dd"}, nil
			},
		}
		deps, stdout, _ := newDeps(pages, nil)

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "linux", gotPlatform)
		assert.Equal(t, "cp, dd\n", stdout.String())
	})

	t.Run("prints one page per line", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageIndex{
			CommandsForFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"cp", "dd"}, nil
			},
		}
		deps, stdout, _ := newDeps(pages, nil)

		err := (&main.ListCmd{SingleColumn: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "cp\ndd\n", stdout.String())
	})

	t.Run("returns error when the index fails", func(t *testing.T) {
		t.Parallel()

		indexErr := errors.New("index unavailable")
		pages := &mock.PageIndex{
			CommandsForFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, indexErr
			},
		}
		deps, _, stderr := newDeps(pages, nil)

		err := (&main.ListCmd{}).Run(deps)

		require.ErrorIs(t, err, indexErr)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestListAllCmd_Run(t *testing.T) {
	t.Parallel()

	pages := &mock.PageIndex{
		CommandsFn: func(_ context.Context) ([]string, error) {
			return []string{"cp", "dd", "svcs"}, nil
		},
	}
	deps, stdout, _ := newDeps(pages, nil)

	err := (&main.ListAllCmd{}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "cp, dd, svcs\n", stdout.String())
}
