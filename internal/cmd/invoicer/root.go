// Package invoicer implements the invoicer command tree for managing
// customers, importing timesheet data, and generating invoice documents.
package invoicer

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/louisbranch/invoicer/internal/invoicing"
	"github.com/louisbranch/invoicer/internal/platform/config"
	"github.com/louisbranch/invoicer/internal/storage/sqlite"
)

type app struct {
	dbPath string
	stdout io.Writer
}

type dbConfig struct {
	Path string `env:"INVOICER_DB" envDefault:"invoices.db"`
}

// New builds the root command with all subcommands attached. Command
// output is written to stdout; errors flow back through RunE.
func New(stdout io.Writer) (*cobra.Command, error) {
	var db dbConfig
	if err := config.ParseEnv(&db); err != nil {
		return nil, err
	}

	a := &app{dbPath: db.Path, stdout: stdout}

	root := &cobra.Command{
		Use:          "invoicer",
		Short:        "Manage customers and generate invoices",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", a.dbPath, "SQLite database path")

	root.AddCommand(
		newCreateCustomerCmd(a),
		newImportCustomerCmd(a),
		newListCustomersCmd(a),
		newImportItemsCmd(a),
		newGenerateInvoiceCmd(a),
		newListInvoicesCmd(a),
		newOneShotCmd(a),
	)
	return root, nil
}

// withService opens the store for the duration of a single command run.
func (a *app) withService(ctx context.Context, fn func(ctx context.Context, svc *invoicing.Service) error) error {
	store, err := sqlite.Open(a.dbPath)
	if err != nil {
		return fmt.Errorf("open invoice store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close invoice store: %v", err)
		}
	}()
	return fn(ctx, invoicing.NewService(store))
}
