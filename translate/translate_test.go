package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("address name foo unknown", From("address name %v unknown", "foo"))
	assert.Equal("branch at $0800", From("branch at %v", "$0800"))
	assert.Equal("plain", From("plain"))
}
