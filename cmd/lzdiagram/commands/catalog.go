package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
)

// Catalog returns the command that prints the compiled-in catalogs.
func Catalog() *cobra.Command {
	var cloud string
	var list bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print a landing zone catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if list {
				for _, name := range diagram.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			d, err := diagram.Lookup(cloud)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(d); err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&cloud, "cloud", diagram.DefaultCatalog, "Catalog to print")
	cmd.Flags().BoolVar(&list, "list", false, "List catalog names only")

	return cmd
}
