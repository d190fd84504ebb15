package quantify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quantify "github.com/quantify-go/quantify"
)

func TestFail_CapturesLocation(t *testing.T) {
	err := quantify.Fail("rejected")
	var f *quantify.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, "rejected", f.Message)
	assert.Equal(t, "check_test.go", f.Loc.File)
	assert.Positive(t, f.Loc.Line)
}

func TestFailf_Formats(t *testing.T) {
	err := quantify.Failf("%d was not less than %d", 7, 3)
	var f *quantify.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, "7 was not less than 3", f.Message)
	assert.Equal(t, "check_test.go", f.Loc.File)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, quantify.Wrap(nil))

	cause := errors.New("boom")
	err := quantify.Wrap(cause)
	assert.True(t, errors.Is(err, cause))

	var f *quantify.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, "boom", f.Message)
	assert.Equal(t, "check_test.go", f.Loc.File)
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "a.go:3", quantify.Location{File: "a.go", Line: 3}.String())
	assert.Equal(t, "unknown source", quantify.Location{}.String())
	assert.True(t, quantify.Location{}.IsZero())
	assert.False(t, quantify.Location{File: "a.go", Line: 3}.IsZero())
}
