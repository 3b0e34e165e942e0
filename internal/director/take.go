package director

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ivlev/pcrcam/internal/pcr"
	"gopkg.in/yaml.v3"
)

// Take describes the camera animation an exporter add-on would drive through
// the scene API.
type Take struct {
	Version string       `yaml:"version"`
	Cameras []CameraTake `yaml:"cameras"`
}

// CameraTake is one camera: its data block, the object wrapping it and the
// keys recorded on them.
type CameraTake struct {
	Name       string     `yaml:"name"`
	ObjectName string     `yaml:"object_name,omitempty"` // defaults to Name
	Data       Attributes `yaml:"data,omitempty"`
	Object     Attributes `yaml:"object,omitempty"`
	Keys       []Key      `yaml:"keys"`
}

// Key lists the attributes assigned and keyframed at a frame
type Key struct {
	Frame  int        `yaml:"frame"`
	Data   Attributes `yaml:"data,omitempty"`
	Object Attributes `yaml:"object,omitempty"`
}

// Attribute is a named property value. Nested settings are flattened with
// dots, e.g. dof.focus_distance.
type Attribute struct {
	Name  string
	Value pcr.Value
}

// Attributes keeps the order attributes appear in the take file.
type Attributes []Attribute

// Get returns the attribute called name.
func (a Attributes) Get(name string) (pcr.Value, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return pcr.Value{}, false
}

// ObjectKey returns the name the camera object is registered under.
func (c *CameraTake) ObjectKey() string {
	if c.ObjectName != "" {
		return c.ObjectName
	}
	return c.Name
}

func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*a = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", node.Line)
	}

	var out Attributes
	if err := flattenAttributes(node, "", &out); err != nil {
		return err
	}
	*a = out
	return nil
}

func flattenAttributes(node *yaml.Node, prefix string, out *Attributes) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := prefix + node.Content[i].Value
		valueNode := node.Content[i+1]
		if valueNode.Kind == yaml.AliasNode {
			valueNode = valueNode.Alias
		}

		if valueNode.Kind == yaml.MappingNode {
			if err := flattenAttributes(valueNode, name+".", out); err != nil {
				return err
			}
			continue
		}

		v, err := decodeValue(valueNode)
		if err != nil {
			return fmt.Errorf("line %d: property %s: %w", valueNode.Line, name, err)
		}
		*out = append(*out, Attribute{Name: name, Value: v})
	}
	return nil
}

func decodeValue(node *yaml.Node) (pcr.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return pcr.Null(), nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return pcr.Value{}, err
			}
			return pcr.Bool(b), nil
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return pcr.Value{}, err
			}
			return pcr.Number(f), nil
		default:
			return pcr.String(node.Value), nil
		}
	case yaml.SequenceNode:
		components := make([]float64, 0, len(node.Content))
		for _, item := range node.Content {
			tag := item.ShortTag()
			if item.Kind != yaml.ScalarNode || (tag != "!!int" && tag != "!!float") {
				return pcr.Value{}, fmt.Errorf("vector components must be numbers")
			}
			var f float64
			if err := item.Decode(&f); err != nil {
				return pcr.Value{}, err
			}
			components = append(components, f)
		}
		return pcr.Vector(components...), nil
	default:
		return pcr.Value{}, fmt.Errorf("unsupported value")
	}
}

func (a Attributes) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, attr := range a {
		value, err := encodeValue(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", attr.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Name},
			value,
		)
	}
	return node, nil
}

func encodeValue(v pcr.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case pcr.KindNumber:
		f, _ := v.Float()
		return numberNode(f), nil
	case pcr.KindString:
		s, _ := v.Text()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	case pcr.KindBool:
		b, _ := v.Boolean()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}, nil
	case pcr.KindVector:
		components, _ := v.Components()
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, c := range components {
			seq.Content = append(seq.Content, numberNode(c))
		}
		return seq, nil
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
}

func numberNode(f float64) *yaml.Node {
	value := strconv.FormatFloat(f, 'g', -1, 64)
	switch {
	case math.IsNaN(f):
		value = ".nan"
	case math.IsInf(f, 1):
		value = ".inf"
	case math.IsInf(f, -1):
		value = "-.inf"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}
