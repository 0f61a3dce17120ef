package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)
	assert.NoError(Version.Validate())
	assert.NotEmpty(Version.String())
}
