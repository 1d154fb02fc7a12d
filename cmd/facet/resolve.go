package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facet-platform/facet/internal/manifest"
	"github.com/facet-platform/facet/internal/model"
	"github.com/facet-platform/facet/internal/selector"
)

func resolveCmd() *cobra.Command {
	var manifestPath string
	var attrFlags []string
	var capFlags []string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Select one variant of a component manifest",
		Long: `Resolve loads a component manifest and selects the variant matching the
requested attributes and capabilities.

Attributes are ordered name=value pairs; capabilities use the
group:name[:version] form, where version may be exact, "*" or a semver
range such as "^1.0".`,
		Example: `  facet resolve -f lib.yaml --attr usage=java-api
  facet resolve -f lib.yaml --attr usage=java-api --capability org:lib-test-fixtures:1.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := manifest.LoadFile(manifestPath)
			if err != nil {
				return err
			}

			req, err := buildRequest(attrFlags, capFlags)
			if err != nil {
				return err
			}

			variant, err := selector.Select(req, doc.Component, doc.Schema)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s -> %s\n", doc.Component.ID, variant.Name)
			for _, name := range variant.Attributes.Names() {
				value, _ := variant.Attributes.Value(name)
				fmt.Fprintf(out, "  %s = %s\n", name, value)
			}
			caps := variant.EffectiveCapabilities(doc.Component.ID)
			fmt.Fprintf(out, "  provides %s\n", model.DisplayCapabilities(caps))
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "", "Component manifest to resolve (required)")
	cmd.Flags().StringArrayVar(&attrFlags, "attr", nil, "Requested attribute as name=value (repeatable, ordered)")
	cmd.Flags().StringArrayVar(&capFlags, "capability", nil, "Requested capability as group:name[:version] (repeatable)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func buildRequest(attrFlags, capFlags []string) (selector.Request, error) {
	pairs := make([]model.Attribute, 0, len(attrFlags))
	for _, raw := range attrFlags {
		name, value, ok := strings.Cut(raw, "=")
		if !ok || name == "" {
			return selector.Request{}, fmt.Errorf("invalid --attr %q: want name=value", raw)
		}
		pairs = append(pairs, model.Attr(name, value))
	}

	req := selector.Request{Attributes: model.NewAttributeSet(pairs...)}
	for _, raw := range capFlags {
		rc, err := model.ParseRequestedCapability(raw)
		if err != nil {
			return selector.Request{}, err
		}
		req.Capabilities = append(req.Capabilities, rc)
	}
	return req, nil
}
