package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

type catalogOptions struct {
	jsonOutput bool
}

func newProductsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type productJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	NameEn        string `json:"name_en"`
	NameEs        string `json:"name_es"`
	DescriptionEn string `json:"description_en"`
	DescriptionEs string `json:"description_es"`
}

type categoryJSON struct {
	Category string        `json:"category"`
	Name     string        `json:"name"`
	Products []productJSON `json:"products"`
}

type productsJSONPayload struct {
	Version    string         `json:"version"`
	Language   string         `json:"language"`
	Count      int            `json:"count"`
	Categories []categoryJSON `json:"categories"`
}

func runProducts(cmd *cobra.Command, rootFlags *rootFlags, opts *catalogOptions) error {
	ctx, app, err := newAppContext(cmd, rootFlags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	lang := app.Bundle.Language()
	groups := app.Catalog.GroupByCategory()
	app.Logger.Debug(ctx, "listing products", "count", app.Catalog.Len(), "language", string(lang))

	if opts.jsonOutput {
		payload := productsJSONPayload{
			Version:    "1.0",
			Language:   string(lang),
			Count:      app.Catalog.Len(),
			Categories: make([]categoryJSON, len(groups)),
		}
		for i, group := range groups {
			entry := categoryJSON{
				Category: string(group.Category),
				Name:     app.Bundle.Category(group.Category),
				Products: make([]productJSON, len(group.Products)),
			}
			for j, p := range group.Products {
				entry.Products[j] = productJSON{
					ID:            p.ID,
					Name:          p.Name(lang),
					Description:   p.Description(lang),
					NameEn:        p.NameEn,
					NameEs:        p.NameEs,
					DescriptionEn: p.DescriptionEn,
					DescriptionEs: p.DescriptionEs,
				}
			}
			payload.Categories[i] = entry
		}
		return writeJSON(cmd, payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(writer)
		}
		fmt.Fprintf(writer, "%s\n", app.Bundle.Category(group.Category))
		for _, p := range group.Products {
			fmt.Fprintf(writer, "  %s\t%s\t%s\n", p.ID, p.Name(lang), p.Description(lang))
		}
	}
	return writer.Flush()
}

func newCoversCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "covers",
		Short: "List the available cover styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			covers := catalog.Covers()
			if opts.jsonOutput {
				return writeJSON(cmd, covers)
			}

			useColor := supportsUnicode(cmd.OutOrStdout())
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tGRADIENT\tACCENT")
			for _, c := range covers {
				gradient := fmt.Sprintf("%s → %s", c.Gradient[0], c.Gradient[1])
				if useColor {
					gradient = swatch(c) + " " + gradient
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", c.ID, c.Name, gradient, c.Accent)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newPapersCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "papers",
		Short: "List the available paper types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			papers := catalog.Papers()
			if opts.jsonOutput {
				return writeJSON(cmd, papers)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tPATTERN")
			for _, p := range papers {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", p.ID, p.Name, p.Pattern)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func swatch(c catalog.CoverStyle) string {
	left := lipgloss.NewStyle().Background(lipgloss.Color(string(c.Gradient[0]))).Render("  ")
	right := lipgloss.NewStyle().Background(lipgloss.Color(string(c.Gradient[1]))).Render("  ")
	return left + right
}

func writeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
