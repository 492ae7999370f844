package formulate_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formulate"
	"github.com/dmitrymomot/formulate/pkg/binding"
	"github.com/dmitrymomot/formulate/pkg/config"
	"github.com/dmitrymomot/formulate/pkg/discovery"
	"github.com/dmitrymomot/formulate/pkg/rules"
	"github.com/dmitrymomot/formulate/pkg/validator"
)

type fakeHost struct {
	registered map[string]formulate.ComponentKind
	err        error
}

func (h *fakeHost) RegisterComponent(tag string, kind formulate.ComponentKind) error {
	if h.err != nil {
		return h.err
	}
	if h.registered == nil {
		h.registered = make(map[string]formulate.ComponentKind)
	}
	h.registered[tag] = kind
	return nil
}

func field(name, validation string) *discovery.VNode {
	return &discovery.VNode{ComponentOptions: &discovery.ComponentOptions{
		Tag:       "formulate-element",
		PropsData: discovery.Props{"name": name, "validation": validation},
	}}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		f, err := formulate.New(nil)
		require.NoError(t, err)

		opts := f.Options()
		assert.True(t, opts.RegisterComponents)
		assert.Equal(t, "formulate", opts.Tags.Formulate)
		assert.Equal(t, "formulate-element", opts.Tags.FormulateElement)
		assert.Empty(t, f.Namespace())
		assert.True(t, f.Rules().Has("required"))
		assert.True(t, f.Messages().Has("default"))
	})

	t.Run("custom rules and messages override built-ins", func(t *testing.T) {
		f, err := formulate.New(nil,
			formulate.WithRules(map[string]rules.Rule{
				"required": rules.Sync(func(rules.Context, ...string) string { return "" }),
				"even": rules.Sync(func(c rules.Context, _ ...string) string {
					if n, ok := c.Value.(int); ok && n%2 == 0 {
						return ""
					}
					return c.Message()
				}),
			}),
			formulate.WithErrors(map[string]rules.MessageFactory{
				"even": func(c rules.Context) string { return c.Field + " must be even" },
			}),
		)
		require.NoError(t, err)

		res, err := f.Validate(context.Background(), validator.Field{Name: "n", Value: 3}, "required|even", nil)
		require.NoError(t, err)
		assert.Equal(t, validator.Result{"n must be even"}, res)
		assert.Equal(t, "n must be even", f.ErrorFactory("even")(rules.Context{Field: "n"}))
		assert.Equal(t, "Invalid field value for N", f.ErrorFactory("nope")(rules.Context{Field: "n"}))
	})

	t.Run("partial tags keep defaults", func(t *testing.T) {
		f, err := formulate.New(nil, formulate.WithTags(formulate.Tags{FormulateElement: "field"}))
		require.NoError(t, err)
		assert.Equal(t, "formulate", f.Options().Tags.Formulate)
		assert.Equal(t, "field", f.Options().Tags.FormulateElement)
	})

	t.Run("option error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := formulate.New(nil, func(*formulate.Options) error { return boom })
		assert.ErrorIs(t, err, boom)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FORMULATE_REGISTER_COMPONENTS", "false")
	t.Setenv("FORMULATE_TAG_ELEMENT", "form-field")
	t.Setenv("FORMULATE_STORE_MODULE", "forms")
	config.Reset()
	t.Cleanup(config.Reset)

	f, err := formulate.New(nil, formulate.FromEnv())
	require.NoError(t, err)

	opts := f.Options()
	assert.False(t, opts.RegisterComponents)
	assert.Equal(t, "formulate", opts.Tags.Formulate)
	assert.Equal(t, "form-field", opts.Tags.FormulateElement)
	assert.Equal(t, "forms", f.Namespace())
}

func TestFromEnv_KeepsExplicitOptions(t *testing.T) {
	for _, key := range []string{
		"FORMULATE_REGISTER_COMPONENTS",
		"FORMULATE_TAG_FORM",
		"FORMULATE_TAG_ELEMENT",
		"FORMULATE_STORE_MODULE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	config.Reset()
	t.Cleanup(config.Reset)

	f, err := formulate.New(nil,
		formulate.WithoutComponents(),
		formulate.WithTags(formulate.Tags{FormulateElement: "my-field"}),
		formulate.WithStoreModule("forms"),
		formulate.FromEnv(),
	)
	require.NoError(t, err)

	opts := f.Options()
	assert.False(t, opts.RegisterComponents)
	assert.Equal(t, "formulate", opts.Tags.Formulate)
	assert.Equal(t, "my-field", opts.Tags.FormulateElement)
	assert.Equal(t, "forms", f.Namespace())
}

func TestInstall(t *testing.T) {
	t.Parallel()

	t.Run("registers both components", func(t *testing.T) {
		f, err := formulate.New(nil)
		require.NoError(t, err)

		host := &fakeHost{}
		require.NoError(t, f.Install(host))
		assert.Equal(t, map[string]formulate.ComponentKind{
			"formulate":         formulate.FormComponent,
			"formulate-element": formulate.ElementComponent,
		}, host.registered)
	})

	t.Run("disabled", func(t *testing.T) {
		f, err := formulate.New(nil, formulate.WithoutComponents())
		require.NoError(t, err)

		host := &fakeHost{}
		require.NoError(t, f.Install(host))
		assert.Empty(t, host.registered)
	})

	t.Run("host failure", func(t *testing.T) {
		f, err := formulate.New(nil)
		require.NoError(t, err)

		err = f.Install(&fakeHost{err: errors.New("duplicate tag")})
		assert.ErrorIs(t, err, formulate.ErrComponentRegistration)
	})
}

func TestValidateTree(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f, err := formulate.New(nil)
	require.NoError(t, err)

	root := &discovery.VNode{ChildNodes: []*discovery.VNode{
		field("email", "required|email"),
		{ChildNodes: []*discovery.VNode{field("age", "number|min(18)")}},
		field("nickname", ""),
	}}

	t.Run("fields in document order", func(t *testing.T) {
		props := f.Fields(root)
		require.Len(t, props, 3)
		assert.Equal(t, "email", props[0].Name())
		assert.Equal(t, "age", props[1].Name())
		assert.Equal(t, "nickname", props[2].Name())
	})

	t.Run("aggregates per field", func(t *testing.T) {
		res, err := f.ValidateTree(ctx, root, map[string]any{"email": "nope", "age": 16})
		require.NoError(t, err)
		assert.False(t, res.Valid())
		assert.Equal(t, validator.Result{"Email is not a valid email address"}, res["email"])
		assert.Equal(t, validator.Result{"Age must be at least 18"}, res["age"])
		assert.Nil(t, res["nickname"])
	})

	t.Run("valid form", func(t *testing.T) {
		res, err := f.ValidateTree(ctx, root, map[string]any{"email": "a@b.co", "age": 30})
		require.NoError(t, err)
		assert.True(t, res.Valid())
		assert.NoError(t, res.Err())
	})

	t.Run("unknown rule fails before validation", func(t *testing.T) {
		bad := &discovery.VNode{ChildNodes: []*discovery.VNode{field("x", "required|nope")}}
		_, err := f.Prepare(bad)
		var unknown *rules.UnknownRuleError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "nope", unknown.Rule)
	})
}

func TestMapModels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f, err := formulate.New(nil, formulate.WithStoreModule("forms"))
	require.NoError(t, err)

	store := binding.NewMemoryStore()
	models, err := f.MapModels(store, map[string]string{"email": "signup/email"})
	require.NoError(t, err)

	require.NoError(t, models["email"].Set(ctx, "a@b.co"))
	values, err := store.Get(ctx, "forms/formValues")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", values["signup"]["email"])

	v, err := models["email"].Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", v)

	_, err = f.MapModels(store, map[string]string{"bad": "nofield"})
	assert.ErrorIs(t, err, binding.ErrInvalidPath)
}
