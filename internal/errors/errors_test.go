package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, "read ledger response")

	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "read ledger response: unexpected EOF", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsCause")
	assert.NoError(t, Wrap(nil, "ignored"))
}
