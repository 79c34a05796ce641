package argstore

import (
	"errors"
	"os"

	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadFile reads arguments from a YAML args file.
//
// The document must be a mapping from argument name to a scalar or to a
// sequence of scalars; a sequence supplies the argument once per item.
// Scalars are kept exactly as written, so `ratio: 3.10` reads as "3.10".
// An empty file yields an empty store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrArgsFileReadFailed, err), "path", path)
	}
	return parseFile(path, data)
}

func parseFile(path string, data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrArgsFileParseFailed, err), "path", path)
	}

	s := newStore()
	if len(doc.Content) == 0 {
		return s, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrArgsFileInvalid, "top level must be a mapping"), "path", path)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			err := zerr.Wrap(domain.ErrArgsFileInvalid, "argument name must be a non-empty scalar")
			return nil, zerr.With(zerr.With(err, "path", path), "line", key.Line)
		}

		switch value.Kind {
		case yaml.ScalarNode:
			s.add(key.Value, scalarText(value))
		case yaml.SequenceNode:
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, invalidValue(path, key)
				}
				s.add(key.Value, scalarText(item))
			}
		default:
			return nil, invalidValue(path, key)
		}
	}

	return s, nil
}

func scalarText(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

func invalidValue(path string, key *yaml.Node) error {
	err := zerr.Wrap(domain.ErrArgsFileInvalid, "value must be a scalar or a list of scalars")
	err = zerr.With(err, "path", path)
	err = zerr.With(err, "argument", key.Value)
	return zerr.With(err, "line", key.Line)
}
