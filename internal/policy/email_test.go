package policy

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailPolicyValidFormat(t *testing.T) {
	pol := NewEmailPolicy(nil)

	valid := []string{
		"nikola.tesla@example.org",
		"user+tag@sub.domain.example",
	}
	for _, email := range valid {
		assert.True(t, pol.ValidFormat(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing-domain@",
		"@missing-local.example",
		"spaces in@example.org",
	}
	for _, email := range invalid {
		assert.False(t, pol.ValidFormat(email), email)
	}
}

func TestEmailPolicyDisposable(t *testing.T) {
	ctx := context.Background()

	t.Run("static list matches case-insensitively", func(t *testing.T) {
		pol := NewEmailPolicy([]string{"Mailinator.com"})

		disposable, err := pol.IsDisposableDomain(ctx, "someone@MAILINATOR.COM")
		require.NoError(t, err)
		assert.True(t, disposable)

		disposable, err = pol.IsDisposableDomain(ctx, "someone@example.org")
		require.NoError(t, err)
		assert.False(t, disposable)
	})

	t.Run("redis source extends the static list", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		_, err := client.SAdd(ctx, "regate:disposable_domains", "trashmail.example").Result()
		require.NoError(t, err)

		pol := NewEmailPolicy([]string{"mailinator.com"},
			WithDisposableSource(NewRedisDisposableSource(client)))

		disposable, err := pol.IsDisposableDomain(ctx, "a@trashmail.example")
		require.NoError(t, err)
		assert.True(t, disposable)

		disposable, err = pol.IsDisposableDomain(ctx, "a@mailinator.com")
		require.NoError(t, err)
		assert.True(t, disposable)

		disposable, err = pol.IsDisposableDomain(ctx, "a@example.org")
		require.NoError(t, err)
		assert.False(t, disposable)
	})

	t.Run("redis failure surfaces as an error", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		mr.Close()

		pol := NewEmailPolicy(nil, WithDisposableSource(NewRedisDisposableSource(client)))

		_, err := pol.IsDisposableDomain(ctx, "a@example.org")
		require.Error(t, err)
	})
}
