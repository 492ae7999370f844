package binding_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formulate/pkg/binding"
)

func TestRedisStore_Key(t *testing.T) {
	t.Parallel()

	store := binding.NewRedisStore(nil, "formulate", 0)
	assert.Equal(t, "formulate::values:signup", store.Key("", "values", "signup"))
	assert.Equal(t, "formulate:forms:errors:signup", store.Key("forms", "errors", "signup"))
	assert.Equal(t, "formulate:forms:values:", store.Key("forms", "values", ""))

	bare := binding.NewRedisStore(nil, "", 0)
	assert.Equal(t, ":values:signup", bare.Key("", "values", "signup"))

	t.Run("module named like a kind stays in its own keyspace", func(t *testing.T) {
		// Root form "values:signup" and form "signup" of module "values".
		root := store.Key("", "values", "values:signup")
		module := store.Key("values", "values", "signup")
		assert.NotEqual(t, root, module)
		assert.NotContains(t, module, store.Key("", "values", ""))
	})
}

func TestRedisStore_InvalidModule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := binding.NewRedisStore(nil, "formulate", 0)
	for _, module := range []string{"a:b", "forms*", "f?rms", "[fo]rms", `f\orms`} {
		t.Run(module, func(t *testing.T) {
			err := store.Commit(ctx, module+"/setFieldValue", binding.FieldValue{Form: "f", Field: "x", Value: 1})
			assert.ErrorIs(t, err, binding.ErrInvalidModule)
			_, err = store.Get(ctx, module+"/formValues")
			assert.ErrorIs(t, err, binding.ErrInvalidModule)
		})
	}
}

func TestRedisStore_UnknownNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := binding.NewRedisStore(nil, "formulate", 0)
	assert.ErrorIs(t, store.Commit(ctx, "forms/explode", binding.FieldValue{}), binding.ErrUnknownMutation)
	_, err := store.Get(ctx, "forms/everything")
	assert.ErrorIs(t, err, binding.ErrUnknownGetter)
}

func TestRedisStore_EncodeError(t *testing.T) {
	t.Parallel()

	store := binding.NewRedisStore(nil, "formulate", 0)
	err := store.Commit(context.Background(), "setFieldValue", binding.FieldValue{Form: "f", Field: "x", Value: make(chan int)})
	assert.ErrorIs(t, err, binding.ErrFailedToEncodeValue)
}

func TestRedisStore_Unreachable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	store := binding.NewRedisStore(client, "formulate", 10)
	model := binding.NewModel(nil, store, "signup", "email")

	assert.Error(t, model.Set(context.Background(), "x"))
	_, err := model.Get(context.Background())
	assert.Error(t, err)
}

// TestRedisStore_Live runs against the server in REDIS_URL and skips without one.
func TestRedisStore_Live(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	prefix := "formulate-test-" + time.Now().Format("150405.000000000")
	store := binding.NewRedisStore(client, prefix, 10)
	ns := binding.NamespaceFunc(func() string { return "forms" })
	t.Cleanup(func() {
		_ = store.Commit(ctx, "forms/resetForm", binding.FieldValue{Form: "signup"})
		_ = store.Commit(ctx, "resetForm", binding.FieldValue{Form: "signup"})
	})

	models, err := binding.MapModels(ns, store, map[string]string{"email": "signup/email", "age": "signup/age"})
	require.NoError(t, err)
	require.NoError(t, models["email"].Set(ctx, "a@b.co"))
	require.NoError(t, models["age"].Set(ctx, 30))
	require.NoError(t, store.Commit(ctx, "setFieldValue", binding.FieldValue{Form: "signup", Field: "email", Value: "root"}))

	v, err := models["email"].Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", v)

	values, err := store.Get(ctx, "forms/formValues")
	require.NoError(t, err)
	assert.Equal(t, binding.FormValues{"signup": {"email": "a@b.co", "age": float64(30)}}, values)

	require.NoError(t, store.Commit(ctx, "forms/setFieldErrors", binding.FieldValue{Form: "signup", Field: "email", Value: []string{"bad"}}))
	valid, err := binding.FormValid(ctx, ns, store, "signup")
	require.NoError(t, err)
	assert.False(t, valid)

	require.NoError(t, store.Commit(ctx, "forms/resetForm", binding.FieldValue{Form: "signup"}))
	v, err = models["email"].Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
