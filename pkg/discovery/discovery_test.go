package discovery_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formulate/pkg/discovery"
)

const fieldTag = "formulate-element"

func field(name string) *discovery.VNode {
	return &discovery.VNode{ComponentOptions: &discovery.ComponentOptions{
		Tag:       fieldTag,
		PropsData: discovery.Props{"name": name},
	}}
}

func wrapper(children ...*discovery.VNode) *discovery.VNode {
	return &discovery.VNode{ChildNodes: children}
}

func component(tag string, children ...*discovery.VNode) *discovery.VNode {
	return &discovery.VNode{ComponentOptions: &discovery.ComponentOptions{Tag: tag, Children: children}}
}

func names(fields []discovery.Props) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name()
	}
	return out
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()
	collector := discovery.NewCollector(fieldTag)

	t.Run("deeply nested field under wrappers", func(t *testing.T) {
		root := wrapper(
			field("first"),
			wrapper(
				component("fieldset",
					wrapper(field("deep")),
				),
			),
			field("last"),
		)
		assert.Equal(t, []string{"first", "deep", "last"}, names(collector.Collect(root)))
	})

	t.Run("no matching descendants", func(t *testing.T) {
		root := wrapper(wrapper(), component("button"))
		assert.Empty(t, collector.Collect(root))
	})

	t.Run("leaf root", func(t *testing.T) {
		assert.Empty(t, collector.Collect(wrapper()))
		assert.Nil(t, collector.Collect(nil))
	})

	t.Run("root is never collected", func(t *testing.T) {
		assert.Empty(t, collector.Collect(field("root")))
	})

	t.Run("component children win over plain children", func(t *testing.T) {
		node := &discovery.VNode{
			ComponentOptions: &discovery.ComponentOptions{Tag: "group", Children: []*discovery.VNode{field("component")}},
			ChildNodes:       []*discovery.VNode{field("plain")},
		}
		assert.Equal(t, []string{"component"}, names(collector.Collect(wrapper(node))))
	})

	t.Run("plain children used when component has none", func(t *testing.T) {
		node := &discovery.VNode{
			ComponentOptions: &discovery.ComponentOptions{Tag: "group"},
			ChildNodes:       []*discovery.VNode{field("plain")},
		}
		assert.Equal(t, []string{"plain"}, names(collector.Collect(wrapper(node))))
	})

	t.Run("fields nested inside fields are both collected", func(t *testing.T) {
		outer := field("outer")
		outer.ComponentOptions.Children = []*discovery.VNode{field("inner")}
		assert.Equal(t, []string{"outer", "inner"}, names(collector.Collect(wrapper(outer))))
	})

	t.Run("duplicates keep document order", func(t *testing.T) {
		root := wrapper(field("a"), field("b"), field("a"))
		assert.Equal(t, []string{"a", "b", "a"}, names(collector.Collect(root)))
	})

	t.Run("nil children are skipped", func(t *testing.T) {
		root := wrapper(nil, field("x"))
		assert.Equal(t, []string{"x"}, names(collector.Collect(root)))
	})
}

func TestProps(t *testing.T) {
	t.Parallel()

	p := discovery.Props{"name": " email ", "validation": "required|email", "label": "E-mail", "initial": "a@b.co"}
	assert.Equal(t, "email", p.Name())
	assert.Equal(t, "required|email", p.Validation())
	assert.Equal(t, "E-mail", p.Label())
	assert.Equal(t, "a@b.co", p.Value())

	p["value"] = "override"
	assert.Equal(t, "override", p.Value())
	assert.Equal(t, "", discovery.Props{"name": 5}.Name())
}

func TestParseHTML(t *testing.T) {
	t.Parallel()

	markup := `<!doctype html>
<html><body>
  <formulate name="signup">
    <formulate-element name="email" validation="required|email" label="Email"></formulate-element>
    <div class="row">
      <section>
        <div><formulate-element name="password" validation="required|min(8)"></formulate-element></div>
      </section>
    </div>
    <input name="plain">
    <formulate-element name="terms" validation="required"></formulate-element>
  </formulate>
</body></html>`

	root, err := discovery.ParseHTML(strings.NewReader(markup))
	require.NoError(t, err)

	fields := discovery.NewCollector(fieldTag).Collect(root)
	require.Equal(t, []string{"email", "password", "terms"}, names(fields))
	assert.Equal(t, "required|email", fields[0].Validation())
	assert.Equal(t, "Email", fields[0].Label())
	assert.Equal(t, "required|min(8)", fields[1].Validation())

	forms := discovery.NewCollector("formulate").Collect(root)
	require.Len(t, forms, 1)
	assert.Equal(t, "signup", forms[0].Name())
}
