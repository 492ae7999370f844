// Package discovery finds the validatable fields declared inside a tree of
// rendered or declared nodes.
//
// The tree is seen through the Node interface, so the traversal does not care
// how the host represents it. Two adapters are included: VNode, which models
// component trees where children may live either in component options or in
// a plain children list, and ParseHTML, which scans server-rendered markup:
//
//	root, err := discovery.ParseHTML(strings.NewReader(`
//	    <form>
//	      <formulate-element name="email" validation="required|email"></formulate-element>
//	    </form>`))
//	fields := discovery.NewCollector("formulate-element").Collect(root)
//	// fields[0].Name() == "email"
//
// Fields are returned in document order. Consumers that initialize state from
// the list rely on the first occurrence of a name winning.
package discovery
