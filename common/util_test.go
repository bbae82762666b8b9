package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHash(t *testing.T) {
	assert.Equal(t, "0xabcdef", NormalizeHash("ABCDEF"))
	assert.Equal(t, "0xabcdef", NormalizeHash("0XABCDEF"))
	assert.Equal(t, "0xabcdef", NormalizeHash("0xabcdef"))
}
