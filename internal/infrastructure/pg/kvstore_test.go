package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `gss\_cache:`, escapeLike("gss_cache:"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, "plain:", escapeLike("plain:"))
}
