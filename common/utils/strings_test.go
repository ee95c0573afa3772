package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	assert.Equal(t, "node:javascript", Trim(" node:javascript\n"))
	assert.Equal(t, "a b", Trim("\x00a b\x1f"))
	assert.Equal(t, "", Trim("\t\r\n"))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "abc", Shorten("abc", 3))
	assert.Equal(t, "ab...", Shorten("abc", 2))
	assert.Equal(t, "пр...", Shorten("привет", 2))
}
