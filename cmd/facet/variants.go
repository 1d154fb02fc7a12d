package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facet-platform/facet/internal/manifest"
	"github.com/facet-platform/facet/internal/model"
)

func variantsCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the variants a component manifest exposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := manifest.LoadFile(manifestPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", doc.Component.ID)
			for _, v := range doc.Component.Variants {
				fmt.Fprintf(out, "  %s\n", v.Name)
				for _, name := range v.Attributes.Names() {
					value, _ := v.Attributes.Value(name)
					fmt.Fprintf(out, "    %s = %s\n", name, value)
				}
				caps := v.EffectiveCapabilities(doc.Component.ID)
				fmt.Fprintf(out, "    provides %s\n", model.DisplayCapabilities(caps))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "", "Component manifest to inspect (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "facet %s (%s)\n", version, commit)
		},
	}
}
