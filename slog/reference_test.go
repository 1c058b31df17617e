package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/reactdict"
	"github.com/fwojciec/reactdict/mock"
	rdslog "github.com/fwojciec/reactdict/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingReferenceFinder_FindReference(t *testing.T) {
	t.Parallel()

	t.Run("logs found reference", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ReferenceFinder{
			FindReferenceFn: func(context.Context, string) (*reactdict.Reference, error) {
				return &reactdict.Reference{URL: "https://react.dev/reference/react/useRef", Content: "# useRef"}, nil
			},
		}

		ref, err := rdslog.NewLoggingReferenceFinder(inner, debugLogger(&buf)).FindReference(context.Background(), "useRef")

		require.NoError(t, err)
		assert.Equal(t, "# useRef", ref.Content)
		output := buf.String()
		assert.Contains(t, output, "url=https://react.dev/reference/react/useRef")
		assert.Contains(t, output, "bytes=8")
	})

	t.Run("logs missing reference without warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ReferenceFinder{
			FindReferenceFn: func(context.Context, string) (*reactdict.Reference, error) {
				return nil, reactdict.Errorf(reactdict.ENOTFOUND, "no reference page")
			},
		}

		_, err := rdslog.NewLoggingReferenceFinder(inner, debugLogger(&buf)).FindReference(context.Background(), "Virtual DOM")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "found=false")
	})

	t.Run("warns on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ReferenceFinder{
			FindReferenceFn: func(context.Context, string) (*reactdict.Reference, error) {
				return nil, errors.New("connection reset")
			},
		}

		_, err := rdslog.NewLoggingReferenceFinder(inner, debugLogger(&buf)).FindReference(context.Background(), "useRef")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"connection reset\"")
	})
}
