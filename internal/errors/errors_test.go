package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCause(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, "read banner payload")

	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "read banner payload: unexpected EOF", err.Error())
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, WithStack(nil))
}

func TestWithStack_RecordsCallSite(t *testing.T) {
	err := WithStack(New("boom"))

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStack_RecordsCallSite")
}
