package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	repoErr := Repository("tags.FindByID", cause)
	err := fmt.Errorf("wrapped: %w", Service("tag.FindByID", repoErr))

	assert.True(t, IsService(err))
	assert.ErrorIs(t, err, cause)

	var re *RepositoryError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "tags.FindByID", re.Op)
}

func TestRepositoryNilCause(t *testing.T) {
	assert.NoError(t, Repository("noop", nil))
}

func TestIncorrectParameter(t *testing.T) {
	err := IncorrectParameter(BadTagNameLength, 2, 15)

	ipe, ok := IsIncorrectParameter(err)
	require.True(t, ok)
	assert.Equal(t, BadTagNameLength, ipe.Code)
	assert.Equal(t, []any{2, 15}, ipe.Args)
	assert.False(t, IsService(err))
}
