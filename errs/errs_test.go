package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/errs"
)

func TestErrorFormatsWithAndWithoutPosition(t *testing.T) {
	t.Parallel()

	e := errs.New(errs.KindFormat, "unexpected column count")
	assert.Equal(t, "format error: unexpected column count", e.Error())

	e.At(errs.Pos{Line: 3, Column: 7})
	assert.Equal(t, "format error at 3:7: unexpected column count", e.Error())
}

func TestWrapExposesCauseViaUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	e := errs.Wrap(errs.KindIO, cause, "read failed")

	require.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "boom")
}

func TestIsMatchesKind(t *testing.T) {
	t.Parallel()

	e := errs.New(errs.KindDSL, "bad token")

	assert.True(t, errs.Is(e, errs.KindDSL))
	assert.False(t, errs.Is(e, errs.KindPrefix))
	assert.False(t, errs.Is(errors.New("plain"), errs.KindDSL))
}

func TestPosIsZero(t *testing.T) {
	t.Parallel()

	var p errs.Pos
	assert.True(t, p.IsZero())
	assert.Equal(t, "", p.String())

	p = errs.Pos{Line: 1, Column: 1}
	assert.False(t, p.IsZero())
	assert.Equal(t, "1:1", p.String())
}
