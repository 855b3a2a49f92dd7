package paperpress_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/paperpress"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := paperpress.Errorf(paperpress.EUNAVAILABLE, "failed to fetch %q", "http://example.com")

	assert.Equal(t, paperpress.EUNAVAILABLE, paperpress.ErrorCode(err))
	assert.Equal(t, "failed to fetch \"http://example.com\"", paperpress.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, paperpress.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, paperpress.EINTERNAL, paperpress.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, paperpress.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", paperpress.ErrorMessage(errors.New("boom")))
}
