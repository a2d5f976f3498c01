package nn

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// DotConfig configures ToDot.
type DotConfig struct {
	GraphName         string // Name of the digraph.
	IncludeParameters bool   // Draw each parameter as a leaf node.
	FontName          string // Font used for every node; empty leaves the Graphviz default.
}

// DefaultDotConfig returns the configuration used by the CLI.
func DefaultDotConfig() DotConfig {
	return DotConfig{
		GraphName:         "G",
		IncludeParameters: true,
		FontName:          "Monaco",
	}
}

// ToDot renders the module tree as a Graphviz digraph.
//
// Modules become box nodes labelled with their kind, edges carry the
// attachment name. With IncludeParameters, every parameter becomes an
// ellipse labelled with its local name and value.
func ToDot(m *Module, cfg DotConfig) (string, error) {
	if cfg.GraphName == "" {
		cfg.GraphName = DefaultDotConfig().GraphName
	}

	g := gographviz.NewGraph()
	if err := g.SetName(cfg.GraphName); err != nil {
		return "", errors.Wrap(err, "dot: set graph name")
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.Wrap(err, "dot: set directed")
	}

	r := &dotRenderer{graph: g, cfg: cfg}
	if _, err := r.addModule(m); err != nil {
		return "", err
	}
	return g.String(), nil
}

type dotRenderer struct {
	graph   *gographviz.Graph
	cfg     DotConfig
	modules int
	params  int
}

func (r *dotRenderer) attrs(label, shape string) map[string]string {
	attrs := map[string]string{
		"label": fmt.Sprintf("%q", label),
		"shape": shape,
	}
	if r.cfg.FontName != "" {
		attrs["fontname"] = fmt.Sprintf("%q", r.cfg.FontName)
	}
	return attrs
}

// addModule adds m and its subtree, returning the node id of m.
func (r *dotRenderer) addModule(m *Module) (string, error) {
	id := fmt.Sprintf("m%d", r.modules)
	r.modules++

	if err := r.graph.AddNode(r.cfg.GraphName, id, r.attrs(m.Kind(), "box")); err != nil {
		return "", errors.Wrapf(err, "dot: add module %s", m.Kind())
	}

	if r.cfg.IncludeParameters {
		for name, p := range m.params.all() {
			pid := fmt.Sprintf("p%d", r.params)
			r.params++

			label := name + " = " + p.String()
			if err := r.graph.AddNode(r.cfg.GraphName, pid, r.attrs(label, "ellipse")); err != nil {
				return "", errors.Wrapf(err, "dot: add parameter %s", name)
			}
			if err := r.graph.AddEdge(id, pid, true, nil); err != nil {
				return "", errors.Wrapf(err, "dot: link parameter %s", name)
			}
		}
	}

	for name, child := range m.children.all() {
		cid, err := r.addModule(child)
		if err != nil {
			return "", err
		}
		edge := map[string]string{"label": fmt.Sprintf("%q", name)}
		if err := r.graph.AddEdge(id, cid, true, edge); err != nil {
			return "", errors.Wrapf(err, "dot: link child %s", name)
		}
	}
	return id, nil
}
