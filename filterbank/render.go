package filterbank

import (
	"bufio"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// WriteText writes one "keyword     value" line per keyword, in stream order.
func (h *Header) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, el := range h.Elements() {
		bw.WriteString(el.Keyword)
		bw.WriteString("     ")
		bw.WriteString(el.Value.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// MarshalYAML encodes the header as a mapping that keeps stream order.
func (h *Header) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, el := range h.Elements() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: el.Keyword},
			yamlScalar(el.Value),
		)
	}
	return node, nil
}

// WriteYAML writes the header as a YAML document.
func (h *Header) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(h); err != nil {
		return err
	}
	return enc.Close()
}

func yamlScalar(v Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch v.Kind() {
	case KindInt32:
		n.Tag = "!!int"
		n.Value = v.String()
	case KindFloat64, KindAngle:
		n.Tag = "!!float"
		f, _ := v.Float()
		switch {
		case math.IsNaN(f):
			n.Value = ".nan"
		case math.IsInf(f, 1):
			n.Value = ".inf"
		case math.IsInf(f, -1):
			n.Value = "-.inf"
		default:
			n.Value = v.String()
		}
	case KindString:
		n.Tag = "!!str"
		n.Value, _ = v.Text()
	case KindNone:
		n.Tag = "!!null"
		n.Value = "null"
	}
	return n
}
