package quantify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quantify "github.com/quantify-go/quantify"
)

func TestAsReport(t *testing.T) {
	_, ok := quantify.AsReport(nil)
	assert.False(t, ok)

	_, ok = quantify.AsReport(errors.New("plain"))
	assert.False(t, ok)

	err := quantify.ForAll(quantify.Of(1), func(int) error { return quantify.Fail("rejected") })
	rep, ok := quantify.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, 1, rep.Total)

	// Wrapped reports stay reachable through errors.As.
	wrapped := fmt.Errorf("inspection: %w", err)
	rep2, ok := quantify.AsReport(wrapped)
	require.True(t, ok)
	assert.Same(t, rep, rep2)
}

func TestReport_UnwrapPreservesCauses(t *testing.T) {
	underlying := errors.New("disk offline")
	err := quantify.ForAll(quantify.Of(1, 2), func(n int) error {
		if n == 1 {
			return nil
		}
		return quantify.Wrap(underlying)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, underlying))

	var f *quantify.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, "disk offline", f.Message)
}

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "index 3", quantify.Label{Kind: quantify.LabelIndex, Index: 3}.String())
	assert.Equal(t, `key "a"`, quantify.Label{Kind: quantify.LabelKey, Key: `"a"`}.String())
}

func TestConfigError_Error(t *testing.T) {
	err := quantify.ForAtLeast(0, quantify.Of(1), func(int) error { return nil })
	require.Error(t, err)
	assert.Equal(t, "forAtLeast(0): invalid quantifier: min must be >= 1, got 0", err.Error())
}
