package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent wraps a gomponents node so it satisfies templ.Component and
// can be passed to the server's Render helpers.
type nodeComponent struct {
	node g.Node
}

func (n nodeComponent) Render(ctx context.Context, w io.Writer) error {
	return n.node.Render(w)
}

// Component adapts node to templ.Component.
func Component(node g.Node) templ.Component {
	return nodeComponent{node: node}
}
