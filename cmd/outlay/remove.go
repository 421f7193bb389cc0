package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/model"
)

func removeCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "remove <transaction-id>",
		Short: "Remove a transaction from the ledger",
		Long: `Remove the transaction with the given ID. Removal always resets any
active filter match, even when no transaction carries the ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			// Initialize journal with auto-migration
			journal, err := initJournal(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = journal.Close()
			}()

			ledger, err := loadLedger(ctx, journal)
			if err != nil {
				return err
			}

			txn, found := findTransaction(ledger, id)
			if !found {
				// Still runs the removal pass: observers hear about the
				// attempt and any matched indices are dropped.
				missing := model.Transaction{ID: id}
				ledger.RemoveTransaction(&missing)
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No transaction with id %s; ledger unchanged", id)))
				return nil
			}

			if !skipConfirm {
				question := fmt.Sprintf("Remove %s expense of %.2f from %s?",
					txn.Category, txn.Amount, txn.Date.Format("2006-01-02"))
				confirmed, confirmErr := cli.Confirm(ctx, os.Stdin, os.Stdout, question)
				if confirmErr != nil {
					return confirmErr
				}
				if !confirmed {
					fmt.Println(cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}

			ledger.RemoveTransaction(&txn)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %s expense of %.2f", txn.Category, txn.Amount)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
