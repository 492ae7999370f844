package discovery

// ComponentOptions is the component shape of a VNode.
type ComponentOptions struct {
	Tag       string
	PropsData Props
	Children  []*VNode
}

// VNode adapts a component tree where children live either in the
// component options or in a plain children list.
type VNode struct {
	ComponentOptions *ComponentOptions
	ChildNodes       []*VNode
}

func (v *VNode) Tag() string {
	if v == nil || v.ComponentOptions == nil {
		return ""
	}
	return v.ComponentOptions.Tag
}

func (v *VNode) Props() Props {
	if v == nil || v.ComponentOptions == nil {
		return nil
	}
	return v.ComponentOptions.PropsData
}

// Children prefers component children and falls back to plain children.
func (v *VNode) Children() []Node {
	if v == nil {
		return nil
	}
	src := v.ChildNodes
	if v.ComponentOptions != nil && len(v.ComponentOptions.Children) > 0 {
		src = v.ComponentOptions.Children
	}
	nodes := make([]Node, 0, len(src))
	for _, child := range src {
		if child != nil {
			nodes = append(nodes, child)
		}
	}
	return nodes
}
