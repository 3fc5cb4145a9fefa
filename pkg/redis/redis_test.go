package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "127.0.0.1:1", "", 0)

	assert.Nil(t, client)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
