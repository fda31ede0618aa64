package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPool_InvalidDSN(t *testing.T) {
	pool, err := NewPool(context.Background(), "postgres://%zz")
	assert.Error(t, err)
	assert.Nil(t, pool)
}
