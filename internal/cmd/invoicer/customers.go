package invoicer

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/louisbranch/invoicer/internal/invoicing"
)

func newCreateCustomerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-customer NAME ADDRESS",
		Short: "Create a customer with the given name and address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, svc *invoicing.Service) error {
				id, err := svc.CreateCustomer(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "Created customer %d: %s\n", id, args[0])
				return nil
			})
		},
	}
}

func newImportCustomerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import-customer CLIENT_JSON",
		Short: "Create or update a customer from a client JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, svc *invoicing.Service) error {
				id, err := svc.ImportCustomerFromFile(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "Imported customer %d from %s\n", id, args[0])
				return nil
			})
		},
	}
}

func newListCustomersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-customers",
		Short: "List all customers ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, svc *invoicing.Service) error {
				customers, err := svc.ListCustomers(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tADDRESS")
				for _, c := range customers {
					address := strings.ReplaceAll(c.Address, "\n", ", ")
					fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, address)
				}
				return w.Flush()
			})
		},
	}
}
