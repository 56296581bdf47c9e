package invoicer

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/louisbranch/invoicer/internal/document"
	"github.com/louisbranch/invoicer/internal/invoicing"
	"github.com/louisbranch/invoicer/internal/money"
)

func newImportItemsCmd(a *app) *cobra.Command {
	var customerID int64
	cmd := &cobra.Command{
		Use:   "import-items DATA_FILE",
		Short: "Import a tab-separated timesheet file as a new invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, svc *invoicing.Service) error {
				id, err := svc.ImportInvoiceFromFile(ctx, customerID, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "Imported invoice %d from %s\n", id, args[0])
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&customerID, "customer-id", 0, "Customer the invoice belongs to")
	_ = cmd.MarkFlagRequired("customer-id")
	return cmd
}

func newGenerateInvoiceCmd(a *app) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "generate-invoice INVOICE_ID",
		Short: "Render an invoice to HTML and PDF files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid invoice id %q", args[0])
			}
			return a.withService(cmd.Context(), func(ctx context.Context, svc *invoicing.Service) error {
				return a.generateDocuments(ctx, svc, invoiceID, outputDir)
			})
		},
	}
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for the generated files")
	return cmd
}

func newListInvoicesCmd(a *app) *cobra.Command {
	var customerID int64
	cmd := &cobra.Command{
		Use:   "list-invoices",
		Short: "List invoices, optionally filtered by customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, svc *invoicing.Service) error {
				invoices, err := svc.ListInvoices(ctx, customerID)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tDATE\tTOTAL")
				for _, inv := range invoices {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
						inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.InvoiceDate, money.Format(inv.TotalAmount))
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().Int64Var(&customerID, "customer-id", 0, "Only show invoices for this customer")
	return cmd
}

func newOneShotCmd(a *app) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "one-shot CLIENT_JSON DATA_FILE",
		Short: "Import a customer and timesheet, then render the invoice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), func(ctx context.Context, svc *invoicing.Service) error {
				customerID, err := svc.ImportCustomerFromFile(ctx, args[0])
				if err != nil {
					return err
				}
				invoiceID, err := svc.ImportInvoiceFromFile(ctx, customerID, args[1])
				if err != nil {
					return err
				}
				return a.generateDocuments(ctx, svc, invoiceID, outputDir)
			})
		},
	}
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for the generated files")
	return cmd
}

// generateDocuments renders both document formats for a stored invoice and
// prints the confirmation line.
func (a *app) generateDocuments(ctx context.Context, svc *invoicing.Service, invoiceID int64, outputDir string) error {
	data, err := svc.GetInvoiceData(ctx, invoiceID)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("invoice %d not found", invoiceID)
	}
	result, err := document.Generate(*data, outputDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, result.Confirmation())
	return nil
}
