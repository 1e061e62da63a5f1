package redis_client

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewNotConfigured(t *testing.T) {
	assert.Nil(t, New(fxtest.NewLifecycle(t), &config.Config{}))
}

func TestNewPingsOnStart(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	client := New(lc, &config.Config{Infrastructure: config.Infrastructure{Redis: config.Redis{Address: mr.Addr()}}})
	require.NotNil(t, client)

	lc.RequireStart()
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	lc.RequireStop()

	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
