// Package dot serializes attribution graphs in Graphviz DOT format.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cdl-biosimilars/cafog/pkg/core"
)

// Write renders the graph with record-shaped nodes listing the
// glycoform name, its observed and its corrected abundance, and
// edges labeled with the glycation shift and its probability.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph glycation {")
	fmt.Fprintln(bw, "\trankdir=BT;")
	for _, node := range g.Nodes {
		fmt.Fprintf(bw, "\t%s [label=\"%s|%.2f|%.2f\", shape=record];\n",
			quote(node.Glycoform.Name),
			escape(node.Glycoform.Name),
			node.Glycoform.Abundance.Value,
			node.Corrected.Value)
	}
	for _, edge := range g.Edges {
		fmt.Fprintf(bw, "\t%s -> %s [label=\"%d Hex: %.2f%%\"];\n",
			quote(g.Nodes[edge.Origin].Glycoform.Name),
			quote(g.Nodes[edge.Target].Glycoform.Name),
			edge.Glycations,
			edge.Weight.Value*100)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func quote(s string) string {
	return `"` + escape(s) + `"`
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "|", `\|`).Replace(s)
}
