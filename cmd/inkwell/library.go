package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/i18n"
)

func newLibraryCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage composed products saved in your library",
	}

	cmd.AddCommand(newLibraryListCmd(rootFlags))
	cmd.AddCommand(newLibraryShowCmd(rootFlags))
	cmd.AddCommand(newLibraryCreateCmd(rootFlags))
	cmd.AddCommand(newLibraryDeleteCmd(rootFlags))

	return cmd
}

type libraryListOptions struct {
	jsonOutput bool
}

func newLibraryListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &libraryListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved products, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibraryList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type itemJSON struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	ProductIDs []string           `json:"product_ids"`
	Cover      catalog.CoverStyle `json:"cover_style"`
	Paper      catalog.PaperType  `json:"paper_type"`
	IsMega     bool               `json:"is_mega"`
	CreatedAt  time.Time          `json:"created_at"`
}

type libraryJSONPayload struct {
	Version string     `json:"version"`
	Count   int        `json:"count"`
	Items   []itemJSON `json:"items"`
}

func toItemJSON(item library.Item) itemJSON {
	return itemJSON{
		ID:         item.ID,
		Name:       item.Name,
		ProductIDs: item.ProductIDs,
		Cover:      item.Cover,
		Paper:      item.Paper,
		IsMega:     item.IsMega,
		CreatedAt:  item.CreatedAt,
	}
}

func runLibraryList(cmd *cobra.Command, rootFlags *rootFlags, opts *libraryListOptions) error {
	ctx, app, err := newAppContext(cmd, rootFlags, appOptions{library: true})
	if err != nil {
		return err
	}
	defer app.Close()

	items := app.Library.List()
	app.Logger.Debug(ctx, "listing library", "count", len(items))

	if opts.jsonOutput {
		payload := libraryJSONPayload{Version: "1.0", Count: len(items), Items: make([]itemJSON, len(items))}
		for i, item := range items {
			payload.Items[i] = toItemJSON(item)
		}
		return writeJSON(cmd, payload)
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Bundle.T(i18n.KeyLibraryEmpty))
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", app.Bundle.T(i18n.KeyCLICreateHint))
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tPRODUCTS\tCOVER\tPAPER\tCREATED")
	for _, item := range items {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			item.Name,
			productCount(app.Bundle, item),
			item.Cover.Name,
			item.Paper.Name,
			app.Bundle.FormatDate(item.CreatedAt),
		)
	}
	return writer.Flush()
}

func productCount(bundle *i18n.Bundle, item library.Item) string {
	if item.IsMega {
		return fmt.Sprintf("%d (%s)", len(item.ProductIDs), bundle.T(i18n.KeyMegaBadge))
	}
	return fmt.Sprintf("%d", len(item.ProductIDs))
}

type libraryShowOptions struct {
	jsonOutput bool
}

func newLibraryShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &libraryShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved product with its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibraryShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runLibraryShow(cmd *cobra.Command, rootFlags *rootFlags, id string, opts *libraryShowOptions) error {
	_, app, err := newAppContext(cmd, rootFlags, appOptions{library: true})
	if err != nil {
		return err
	}
	defer app.Close()

	item, ok := app.Library.Get(strings.TrimSpace(id))
	if !ok {
		return newCommandError("show", fmt.Sprintf("looking up item %q", id), library.ErrNotFound, "Run 'inkwell library list' to view saved products.")
	}

	if opts.jsonOutput {
		return writeJSON(cmd, toItemJSON(item))
	}

	return renderItem(cmd, app, item)
}

func renderItem(cmd *cobra.Command, app *AppContext, item library.Item) error {
	lang := app.Bundle.Language()

	title := item.Name
	if item.IsMega {
		title = fmt.Sprintf("%s [%s]", item.Name, app.Bundle.T(i18n.KeyMegaBadge))
	}
	fmt.Fprintln(cmd.OutOrStdout(), title)

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "  ID:\t%s\n", item.ID)
	fmt.Fprintf(writer, "  %s:\t%s (%s → %s)\n", app.Bundle.T(i18n.KeyLibraryCover), item.Cover.Name, item.Cover.Gradient[0], item.Cover.Gradient[1])
	fmt.Fprintf(writer, "  %s:\t%s (%s)\n", app.Bundle.T(i18n.KeyLibraryPaper), item.Paper.Name, item.Paper.Pattern)
	fmt.Fprintf(writer, "  %s:\t%s\n", app.Bundle.T(i18n.KeyCLICreatedLabel), app.Bundle.FormatDate(item.CreatedAt))
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s (%d):\n", app.Bundle.T(i18n.KeyLibraryProducts), len(item.ProductIDs))
	for _, id := range item.ProductIDs {
		product, ok := app.Catalog.Lookup(id)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", id)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s  %s\n", id, product.Name(lang))
	}
	return nil
}

type libraryCreateOptions struct {
	name       string
	productIDs []string
	all        bool
	cover      string
	paper      string
	jsonOutput bool
}

func newLibraryCreateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &libraryCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Compose products into a new library item",
		Example: `  inkwell library create --name "My Journal 2024" --products p1,p5
  inkwell library create --name "Everything" --all --cover nature --paper dotted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibraryCreate(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Name of the new product")
	cmd.Flags().StringSliceVar(&opts.productIDs, "products", nil, "Comma-separated catalog product ids")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Include every catalog product (mega product)")
	cmd.Flags().StringVar(&opts.cover, "cover", catalog.DefaultCover().ID, "Cover style id (see 'inkwell covers')")
	cmd.Flags().StringVar(&opts.paper, "paper", catalog.DefaultPaper().ID, "Paper type id (see 'inkwell papers')")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagsMutuallyExclusive("products", "all")

	return cmd
}

func runLibraryCreate(cmd *cobra.Command, rootFlags *rootFlags, opts *libraryCreateOptions) error {
	ctx, app, err := newAppContext(cmd, rootFlags, appOptions{library: true})
	if err != nil {
		return err
	}
	defer app.Close()

	ids := make([]string, 0, len(opts.productIDs))
	for _, id := range opts.productIDs {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	if opts.all {
		ids = app.Catalog.IDs()
	}

	item, err := app.Library.CreateFrom(ctx, ids, opts.name, opts.cover, opts.paper)
	if err != nil {
		return newCommandError("create", fmt.Sprintf("composing %q", opts.name), localize(app.Bundle, err), createSuggestion(err))
	}

	if opts.jsonOutput {
		return writeJSON(cmd, toItemJSON(item))
	}

	check := "✓"
	if !supportsUnicode(cmd.OutOrStdout()) {
		check = "[OK]"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", check, app.Bundle.T(i18n.KeyCreatedMessage))
	fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  (%s)\n", item.ID, item.Name, productCount(app.Bundle, item))
	return nil
}

func createSuggestion(err error) string {
	switch library.CodeOf(err) {
	case library.ErrCodeEmptyName:
		return "Pass a non-blank --name."
	case library.ErrCodeEmptySelection:
		return "Pass --products with at least one id, or --all."
	case library.ErrCodeInvalidID:
		return "Run 'inkwell products' to view valid product ids."
	case library.ErrCodeValidation:
		return "Run 'inkwell covers' or 'inkwell papers' to view valid style ids."
	case library.ErrCodePersistenceFailure:
		return "Check disk space and permissions of the data directory, then retry."
	default:
		return ""
	}
}

// localize swaps user-facing domain errors for their translated text while
// keeping the original error reachable through errors.Is.
func localize(bundle *i18n.Bundle, err error) error {
	var key string
	switch library.CodeOf(err) {
	case library.ErrCodeEmptyName:
		key = i18n.KeyErrEmptyName
	case library.ErrCodeEmptySelection:
		key = i18n.KeyErrEmptySelect
	case library.ErrCodePersistenceFailure:
		key = i18n.KeyErrPersistence
	default:
		return err
	}
	return &localizedError{message: bundle.T(key), cause: err}
}

type localizedError struct {
	message string
	cause   error
}

func (e *localizedError) Error() string { return e.message }

func (e *localizedError) Unwrap() error { return e.cause }

type libraryDeleteOptions struct {
	force bool
}

func newLibraryDeleteCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &libraryDeleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved product from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibraryDelete(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Delete without confirmation")

	return cmd
}

func runLibraryDelete(cmd *cobra.Command, rootFlags *rootFlags, id string, opts *libraryDeleteOptions) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return newCommandError("delete", "validating item ID", errors.New("item ID cannot be empty"), "Provide the ID of the item you wish to delete.")
	}

	ctx, app, err := newAppContext(cmd, rootFlags, appOptions{library: true})
	if err != nil {
		return err
	}
	defer app.Close()

	item, ok := app.Library.Get(id)
	if !ok {
		return newCommandError("delete", fmt.Sprintf("looking up item %q", id), library.ErrNotFound, "Run 'inkwell library list' to view saved products.")
	}

	if !opts.force {
		confirmed, err := confirmDeletion(cmd, app.Bundle, item)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.Bundle.T(i18n.KeyCLICancelled))
			return nil
		}
	}

	if _, err := app.Library.Delete(ctx, id); err != nil {
		return newCommandError("delete", fmt.Sprintf("deleting item %q", id), localize(app.Bundle, err), createSuggestion(err))
	}

	check := "✓"
	if !supportsUnicode(cmd.OutOrStdout()) {
		check = "[OK]"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", check, app.Bundle.Tf(i18n.KeyDeleted, item.Name))
	return nil
}

func confirmDeletion(cmd *cobra.Command, bundle *i18n.Bundle, item library.Item) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("delete", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ", bundle.Tf(i18n.KeyDeleteConfirm, item.Name))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si" || answer == "sí", nil
}
