package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/SchemaCatalog/src/app"
	"github.com/Blackdeer1524/SchemaCatalog/src/assets"
	"github.com/Blackdeer1524/SchemaCatalog/src/catalog"
)

var (
	schemaPath  string
	tripletPath string
)

func loadCatalog() (*catalog.Catalog, error) {
	if schemaPath == "" && tripletPath == "" {
		return assets.DefaultCatalog(), nil
	}

	if schemaPath == "" || tripletPath == "" {
		return nil, fmt.Errorf("--schemas and --triplets must be set together")
	}

	return catalog.LoadFS(afero.NewOsFs(), schemaPath, tripletPath)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the schemas in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}

			for _, name := range c.SchemaNames() {
				entry, err := c.Lookup(name)
				if err != nil {
					return err
				}

				cmd.Printf(
					"%s\t%d labels\t%d relationship types\t%d patterns\n",
					name,
					len(entry.Definition.Labels),
					len(entry.Definition.RelationshipTypes),
					len(entry.Triplets.Patterns),
				)
			}

			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <schema>",
		Short: "Show one schema's vocabulary and permitted patterns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}

			entry, err := c.Lookup(args[0])
			if err != nil {
				return err
			}

			cmd.Printf("schema: %s\n", entry.Definition.Name)

			cmd.Println("labels:")
			for _, label := range entry.Definition.Labels {
				cmd.Printf("  %s\n", label)
			}

			cmd.Println("relationship types:")
			for _, rel := range entry.Definition.RelationshipTypes {
				cmd.Printf("  %s\n", rel)
			}

			cmd.Println("patterns:")
			for _, pattern := range entry.Triplets.Patterns {
				cmd.Printf("  %s\n", pattern)
			}

			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every triplet pattern against its schema's vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}

			report := catalog.Validate(c)
			for _, v := range report {
				cmd.Println(v)
			}

			if !report.OK() {
				return fmt.Errorf("%d consistency violations", len(report))
			}

			cmd.Printf("%d schemas, no violations\n", c.Len())

			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over a read-only HTTP API (configured via environment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(
				cmd.Context(), os.Interrupt, syscall.SIGTERM,
			)
			defer stop()

			e := &app.APIEntrypoint{}
			if err := e.Init(ctx); err != nil {
				return err
			}
			defer e.Close()

			return e.Run(ctx)
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:           "schemacat",
		Short:         "Graph example-schema catalog loader and validator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(
		&schemaPath, "schemas", "", "path to a schema source file (default: embedded data)",
	)
	root.PersistentFlags().StringVar(
		&tripletPath, "triplets", "", "path to a triplet source file (default: embedded data)",
	)

	root.AddCommand(newListCmd(), newShowCmd(), newValidateCmd(), newServeCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
