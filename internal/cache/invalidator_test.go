package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "dispatch:order:42", DispatchOrderKey(42))
	assert.Equal(t, "dispatch:orders", DispatchOrderListKey())
	assert.Equal(t, "dispatch:project:7", ProjectKey(7))
	assert.Equal(t, "dispatch:document:9", DocumentKey(9))
}
