package redisstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acpilot/acpilot/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Client = &fakeClient{}

type fakeClient struct {
	values map[string]string
	err    error
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore(t *testing.T) {
	c := fakeClient{values: make(map[string]string)}
	r := RedisStore{Client: &c, Key: DefaultKey}

	_, err := r.Load(t.Context())
	assert.ErrorIs(t, err, store.ErrNoDocument)

	require.NoError(t, r.Save(t.Context(), []byte(`{"version":1}`)))
	assert.Equal(t, `{"version":1}`, c.values[DefaultKey])

	body, err := r.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(body))

	c.err = errors.New("connection refused")
	_, err = r.Load(t.Context())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNoDocument)
	assert.Error(t, r.Save(t.Context(), []byte(`{}`)))
}

func TestNew(t *testing.T) {
	r := New("localhost:6379", "")
	assert.Equal(t, DefaultKey, r.Key)
	assert.NotNil(t, r.Client)
}
