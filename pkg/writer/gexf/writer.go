// Package gexf serializes attribution graphs in the GEXF graph
// exchange format. Abundances and edge weights are split into value
// and error attributes, since GEXF has no paired-uncertainty type.
package gexf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/cdl-biosimilars/cafog/pkg/core"
)

type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	EdgeType   string          `xml:"defaultedgetype,attr"`
	Attributes []gexfAttrDecls `xml:"attributes"`
	Nodes      []gexfNode      `xml:"nodes>node"`
	Edges      []gexfEdge      `xml:"edges>edge"`
}

type gexfAttrDecls struct {
	Class string     `xml:"class,attr"`
	Attrs []gexfAttr `xml:"attribute"`
}

type gexfAttr struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID        string          `xml:"id,attr"`
	Label     string          `xml:"label,attr"`
	AttValues []gexfAttrValue `xml:"attvalues>attvalue"`
}

type gexfEdge struct {
	ID        string          `xml:"id,attr"`
	Source    string          `xml:"source,attr"`
	Target    string          `xml:"target,attr"`
	AttValues []gexfAttrValue `xml:"attvalues>attvalue"`
}

type gexfAttrValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

var nodeAttrs = []gexfAttr{
	{ID: "0", Title: "abundance", Type: "double"},
	{ID: "1", Title: "abundance_error", Type: "double"},
	{ID: "2", Title: "corr_abundance", Type: "double"},
	{ID: "3", Title: "corr_abundance_error", Type: "double"},
}

var edgeAttrs = []gexfAttr{
	{ID: "0", Title: "c", Type: "double"},
	{ID: "1", Title: "c_error", Type: "double"},
	{ID: "2", Title: "glycations", Type: "integer"},
}

// Write renders the graph as a GEXF document.
func Write(w io.Writer, g *core.Graph) error {
	doc := gexfDoc{
		XMLNS:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Graph: gexfGraph{
			EdgeType: "directed",
			Attributes: []gexfAttrDecls{
				{Class: "node", Attrs: nodeAttrs},
				{Class: "edge", Attrs: edgeAttrs},
			},
		},
	}

	for _, node := range g.Nodes {
		doc.Graph.Nodes = append(doc.Graph.Nodes, gexfNode{
			ID:    strconv.Itoa(node.Index),
			Label: node.Glycoform.Name,
			AttValues: []gexfAttrValue{
				{For: "0", Value: formatFloat(node.Glycoform.Abundance.Value)},
				{For: "1", Value: formatFloat(node.Glycoform.Abundance.Err)},
				{For: "2", Value: formatFloat(node.Corrected.Value)},
				{For: "3", Value: formatFloat(node.Corrected.Err)},
			},
		})
	}
	for i, edge := range g.Edges {
		doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
			ID:     strconv.Itoa(i),
			Source: strconv.Itoa(edge.Origin),
			Target: strconv.Itoa(edge.Target),
			AttValues: []gexfAttrValue{
				{For: "0", Value: formatFloat(edge.Weight.Value)},
				{For: "1", Value: formatFloat(edge.Weight.Err)},
				{For: "2", Value: strconv.Itoa(edge.Glycations)},
			},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode GEXF: %w", err)
	}
	return enc.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
