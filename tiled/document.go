package tiled

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// node is a generic element of a map document. go-tiled splits layers into one
// slice per kind and flattens class properties, so the document is also read
// as a tree to recover layer order, object attributes and nested properties.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
	Text    string     `xml:",chardata"`
}

func decodeDocument(data []byte) (*node, error) {
	var root node
	d := xml.NewDecoder(bytes.NewReader(data))
	if err := d.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// stripElements returns data without any element called name, at any depth.
func stripElements(data []byte, name string) ([]byte, error) {
	var out bytes.Buffer
	d := xml.NewDecoder(bytes.NewReader(data))
	var last int64
	for {
		start := d.InputOffset()
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != name {
			continue
		}
		if err := d.Skip(); err != nil {
			return nil, err
		}
		out.Write(data[last:start])
		last = d.InputOffset()
	}
	out.Write(data[last:])
	return out.Bytes(), nil
}

func (n *node) name() string {
	return n.XMLName.Local
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) stringAttr(name string) string {
	v, _ := n.attr(name)
	return v
}

// floatAttr returns 0 for a missing or unparsable attribute.
func (n *node) floatAttr(name string) float64 {
	v, ok := n.attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func (n *node) intAttr(name string) int {
	return int(n.floatAttr(name))
}

func (n *node) uintAttr(name string) (uint32, bool) {
	v, ok := n.attr(name)
	if !ok {
		return 0, false
	}
	u, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(u), true
}

func (n *node) child(name string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].name() == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *node) children(name string) []*node {
	var out []*node
	for i := range n.Nodes {
		if n.Nodes[i].name() == name {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

// properties reads the <properties> child of n. Values that do not parse as
// their declared type are dropped, which leaves them absent for lookups.
func (n *node) properties() Properties {
	list := n.child("properties")
	if list == nil {
		return nil
	}
	props := make(Properties)
	for _, p := range list.children("property") {
		name, ok := p.attr("name")
		if !ok {
			continue
		}
		if v, ok := p.propertyValue(); ok {
			props[name] = v
		}
	}
	return props
}

func (n *node) propertyValue() (PropertyValue, bool) {
	raw, ok := n.attr("value")
	if !ok {
		raw = n.Text
	}
	switch n.stringAttr("type") {
	case "", "string", "file", "color", "object":
		return StringValue(raw), true
	case "float":
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, false
		}
		return FloatValue(f), true
	case "int":
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, false
		}
		return IntValue(i), true
	case "bool":
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, false
		}
		return BoolValue(b), true
	case "class":
		members := n.properties()
		if members == nil {
			members = Properties{}
		}
		return ClassValue{Type: n.stringAttr("propertytype"), Properties: members}, true
	}
	return nil, false
}
