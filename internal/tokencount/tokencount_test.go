package tokencount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStub_Count(t *testing.T) {
	assert.Equal(t, 1, Stub{}.Count(""))
	assert.Equal(t, 1, Stub{}.Count("ab"))
	assert.Equal(t, 1, Stub{}.Count("abcd"))
	assert.Equal(t, 2, Stub{}.Count("abcde"))
	assert.Equal(t, 25, Stub{}.Count(string(make([]byte, 100))))
}
