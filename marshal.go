package thicket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes m as a JSON object, preserving insertion order
// (encoding/json alphabetizes map[string]any, which would lose it).
// Non-string keys are rendered through their string form, since JSON
// objects only have string keys.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(jsonKeyString(e.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valBytes, err := json.Marshal(e.Value.Interface())
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonKeyString(key Value) string {
	if s, ok := key.String_(); ok {
		return s
	}
	return fmt.Sprint(key.Interface())
}

// MarshalYAML encodes m as an ordered YAML mapping node. gopkg.in/yaml.v3
// has no MapSlice-style ordered map, so insertion order is preserved by
// building the mapping node directly rather than going through a Go map.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m.entries {
		keyNode, err := scalarNode(e.Key)
		if err != nil {
			return nil, err
		}
		valNode, err := valueNode(e.Value)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func valueNode(v Value) (*yaml.Node, error) {
	switch v.Kind() {
	case KindList:
		items, _ := v.List()
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range items {
			itemNode, err := valueNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	case KindMap:
		m, _ := v.Map()
		raw, err := m.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return raw.(*yaml.Node), nil
	default:
		return scalarNode(v)
	}
}

func scalarNode(v Value) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode}
	switch v.Kind() {
	case KindNull:
		node.Tag = "!!null"
		node.Value = "null"
	case KindBool:
		b, _ := v.Bool()
		node.Tag = "!!bool"
		node.Value = strconv.FormatBool(b)
	case KindInt:
		i, _ := v.Int()
		node.Tag = "!!int"
		node.Value = strconv.FormatInt(i, 10)
	case KindUint:
		u, _ := v.Uint()
		node.Tag = "!!int"
		node.Value = strconv.FormatUint(u, 10)
	case KindFloat:
		f, _ := v.Float()
		node.Tag = "!!float"
		node.Value = strconv.FormatFloat(f, 'g', -1, 64)
	case KindString:
		s, _ := v.String_()
		node.Tag = "!!str"
		node.Value = s
	default:
		return nil, fmt.Errorf("cannot encode %s as a YAML scalar", v.Kind())
	}
	return node, nil
}
