package searchspace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//////
// YAML space documents.
//
// A space document is either a mapping whose entries are candidate spaces
// (the first entry is used unless a namespace is given) or directly a list
// of dimension items. Each item is a single-key mapping tagged "real",
// "integer" or "categorical" (case-insensitive) whose payload holds that
// variant's constructor arguments with case-insensitive keys. Items with
// unrecognized tags are silently skipped.
//
//	space:
//	  - integer:
//	      low: -5
//	      high: 5
//	  - categorical:
//	      categories: [a, b]
//	  - real:
//	      low: 1.0
//	      high: 5.0
//	      prior: log-uniform
//////

// LoadYAML builds a Space from a YAML document read from r. When the top
// level is a mapping, namespace selects the entry to use; an empty
// namespace uses the first entry in document order.
func LoadYAML(r io.Reader, namespace string) (*Space, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("searchspace: decoding yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("searchspace: empty yaml document: %w", ErrInvalidDimension)
		}

		root = root.Content[0]
	}

	items, err := yamlSpaceItems(root, namespace)
	if err != nil {
		return nil, err
	}

	var dims []any

	for _, item := range items {
		dim, ok, err := yamlDimension(item)
		if err != nil {
			return nil, err
		}

		if ok {
			dims = append(dims, dim)
		}
	}

	return NewSpace(dims...)
}

// LoadYAMLFile builds a Space from the YAML document at path.
func LoadYAMLFile(path, namespace string) (*Space, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("searchspace: opening %s: %w", path, err)
	}
	defer f.Close()

	return LoadYAML(f, namespace)
}

// yamlSpaceItems resolves the dimension item list from the document root.
func yamlSpaceItems(root *yaml.Node, namespace string) ([]*yaml.Node, error) {
	switch root.Kind {
	case yaml.SequenceNode:
		return root.Content, nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, value := root.Content[i], root.Content[i+1]

			if namespace == "" || strings.EqualFold(key.Value, namespace) {
				if value.Kind != yaml.SequenceNode {
					return nil, fmt.Errorf("searchspace: namespace %q does not hold a list: %w",
						key.Value, ErrInvalidDimension)
				}

				return value.Content, nil
			}
		}

		return nil, fmt.Errorf("searchspace: namespace %q not found: %w", namespace, ErrInvalidDimension)

	default:
		return nil, fmt.Errorf("searchspace: yaml document must be a list or a mapping: %w", ErrInvalidDimension)
	}
}

// yamlDimension builds a Dimension from one tagged item. ok is false when
// the item's tag is unrecognized and the item should be skipped.
func yamlDimension(item *yaml.Node) (Dimension, bool, error) {
	if item.Kind != yaml.MappingNode || len(item.Content) < 2 {
		return nil, false, fmt.Errorf("searchspace: dimension item must be a single-key mapping: %w",
			ErrInvalidDimension)
	}

	tag := strings.ToLower(item.Content[0].Value)
	payload := item.Content[1]

	fields, err := yamlFields(payload)
	if err != nil {
		return nil, false, err
	}

	switch tag {
	case "real":
		dim, err := yamlReal(fields)

		return dim, true, err
	case "integer":
		dim, err := yamlInteger(fields)

		return dim, true, err
	case "categorical":
		dim, err := yamlCategorical(fields)

		return dim, true, err
	}

	return nil, false, nil
}

// yamlFields lowers the payload's keys so field names are case-insensitive.
func yamlFields(payload *yaml.Node) (map[string]*yaml.Node, error) {
	if payload.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("searchspace: dimension payload must be a mapping: %w", ErrInvalidDimension)
	}

	fields := make(map[string]*yaml.Node, len(payload.Content)/2)
	for i := 0; i+1 < len(payload.Content); i += 2 {
		fields[strings.ToLower(payload.Content[i].Value)] = payload.Content[i+1]
	}

	return fields, nil
}

// yamlNumericOpts decodes the option fields shared by real and integer items.
func yamlNumericOpts(fields map[string]*yaml.Node) ([]Option, error) {
	var opts []Option

	if node, ok := fields["prior"]; ok {
		var prior string
		if err := node.Decode(&prior); err != nil {
			return nil, fmt.Errorf("searchspace: decoding prior: %w", err)
		}

		opts = append(opts, WithPrior(prior))
	}

	if node, ok := fields["base"]; ok {
		var base int
		if err := node.Decode(&base); err != nil {
			return nil, fmt.Errorf("searchspace: decoding base: %w", err)
		}

		opts = append(opts, WithBase(base))
	}

	opts, err := yamlCommonOpts(fields, opts)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

// yamlCommonOpts decodes the transform and name fields every variant takes.
func yamlCommonOpts(fields map[string]*yaml.Node, opts []Option) ([]Option, error) {
	if node, ok := fields["transform"]; ok {
		var mode string
		if err := node.Decode(&mode); err != nil {
			return nil, fmt.Errorf("searchspace: decoding transform: %w", err)
		}

		opts = append(opts, WithTransform(mode))
	}

	if node, ok := fields["name"]; ok {
		var name string
		if err := node.Decode(&name); err != nil {
			return nil, fmt.Errorf("searchspace: decoding name: %w", err)
		}

		opts = append(opts, WithName(name))
	}

	return opts, nil
}

func yamlReal(fields map[string]*yaml.Node) (Dimension, error) {
	var low, high float64

	if err := yamlBound(fields, "low", &low); err != nil {
		return nil, err
	}

	if err := yamlBound(fields, "high", &high); err != nil {
		return nil, err
	}

	opts, err := yamlNumericOpts(fields)
	if err != nil {
		return nil, err
	}

	return NewReal(low, high, opts...)
}

func yamlInteger(fields map[string]*yaml.Node) (Dimension, error) {
	var low, high int

	if err := yamlBound(fields, "low", &low); err != nil {
		return nil, err
	}

	if err := yamlBound(fields, "high", &high); err != nil {
		return nil, err
	}

	opts, err := yamlNumericOpts(fields)
	if err != nil {
		return nil, err
	}

	return NewInteger(low, high, opts...)
}

func yamlCategorical(fields map[string]*yaml.Node) (Dimension, error) {
	node, ok := fields["categories"]
	if !ok {
		return nil, fmt.Errorf("searchspace: categorical item needs categories: %w", ErrInvalidDimension)
	}

	var categories []any
	if err := node.Decode(&categories); err != nil {
		return nil, fmt.Errorf("searchspace: decoding categories: %w", err)
	}

	var opts []Option

	// "prior" and "weights" both name the per-category probabilities.
	for _, key := range []string{"prior", "weights"} {
		if node, ok := fields[key]; ok {
			var weights []float64
			if err := node.Decode(&weights); err != nil {
				return nil, fmt.Errorf("searchspace: decoding %s: %w", key, err)
			}

			opts = append(opts, WithWeights(weights))

			break
		}
	}

	opts, err := yamlCommonOpts(fields, opts)
	if err != nil {
		return nil, err
	}

	return NewCategorical(categories, opts...)
}

// yamlBound decodes a required numeric field into out.
func yamlBound[T int | float64](fields map[string]*yaml.Node, key string, out *T) error {
	node, ok := fields[key]
	if !ok {
		return fmt.Errorf("searchspace: missing %s bound: %w", key, ErrInvalidDimension)
	}

	if err := node.Decode(out); err != nil {
		return fmt.Errorf("searchspace: decoding %s: %w", key, err)
	}

	return nil
}
