// Package manifest loads component metadata and attribute-schema rules from
// YAML documents.
//
// Attribute declaration order matters for diagnostics, so attribute mappings
// are decoded via yaml.Node rather than a plain map.
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/facet-platform/facet/internal/model"
	"github.com/facet-platform/facet/internal/schema"
)

// Document is a loaded manifest: one component plus the compatibility rules
// declared alongside it. Both are immutable after loading.
type Document struct {
	Component model.Component
	Schema    *schema.Schema
}

type rawManifest struct {
	Component rawIdentity  `yaml:"component"`
	Variants  []rawVariant `yaml:"variants"`
	Schema    []rawRule    `yaml:"schema"`
}

type rawIdentity struct {
	Group   string `yaml:"group"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type rawVariant struct {
	Name         string        `yaml:"name"`
	Attributes   attributeList `yaml:"attributes"`
	Capabilities []string      `yaml:"capabilities"`
}

type rawRule struct {
	Attribute  string        `yaml:"attribute"`
	Compatible []rawRulePair `yaml:"compatible"`
}

type rawRulePair struct {
	Consumer  string   `yaml:"consumer"`
	Producers []string `yaml:"producers"`
}

// attributeList decodes a YAML mapping while preserving key order.
type attributeList []model.Attribute

func (l *attributeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("attributes: expected a mapping, got %s", node.Tag)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		*l = append(*l, model.Attr(node.Content[i].Value, node.Content[i+1].Value))
	}
	return nil
}

func Load(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("manifest: read: %w", err)
	}
	return Parse(raw)
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func Parse(data []byte) (*Document, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	if raw.Component.Group == "" || raw.Component.Name == "" || raw.Component.Version == "" {
		return nil, fmt.Errorf("manifest: component needs group, name and version")
	}
	if len(raw.Variants) == 0 {
		return nil, fmt.Errorf("manifest: component %s:%s:%s declares no variants",
			raw.Component.Group, raw.Component.Name, raw.Component.Version)
	}

	seen := make(map[string]bool, len(raw.Variants))
	variants := make([]model.Variant, 0, len(raw.Variants))
	for _, rv := range raw.Variants {
		if rv.Name == "" {
			return nil, fmt.Errorf("manifest: variant with empty name")
		}
		if seen[rv.Name] {
			return nil, fmt.Errorf("manifest: duplicate variant name %q", rv.Name)
		}
		seen[rv.Name] = true

		caps := make([]model.Capability, 0, len(rv.Capabilities))
		for _, s := range rv.Capabilities {
			c, err := model.ParseCapability(s)
			if err != nil {
				return nil, fmt.Errorf("manifest: variant %q: %w", rv.Name, err)
			}
			caps = append(caps, c)
		}
		variants = append(variants, model.NewVariant(rv.Name, model.NewAttributeSet(rv.Attributes...), caps...))
	}

	sch := schema.New()
	for _, rule := range raw.Schema {
		if rule.Attribute == "" {
			return nil, fmt.Errorf("manifest: schema rule with empty attribute name")
		}
		pairs := make(map[string][]string, len(rule.Compatible))
		for _, p := range rule.Compatible {
			if p.Consumer == "" {
				return nil, fmt.Errorf("manifest: schema rule for %q: empty consumer value", rule.Attribute)
			}
			pairs[p.Consumer] = append(pairs[p.Consumer], p.Producers...)
		}
		sch.RegisterCompatiblePairs(rule.Attribute, pairs)
	}

	return &Document{
		Component: model.NewComponent(raw.Component.Group, raw.Component.Name, raw.Component.Version, variants...),
		Schema:    sch,
	}, nil
}
