package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/model"
)

func addCmd() *cobra.Command {
	var (
		dateStr  string
		note     string
		category string
		amount   float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense transaction",
		Long: `Append an expense transaction to the ledger. The transaction gets a
freshly minted ID and is written through to the journal immediately.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				ID:       uuid.New().String(),
				Date:     date,
				Note:     note,
				Category: category,
				Amount:   amount,
			}
			if err := txn.Validate(); err != nil {
				return err
			}

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

			if err := ledger.AddTransaction(&txn); err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s expense of %.2f", txn.Category, txn.Amount)))
			fmt.Println(cli.SubtleStyle.Render("id: " + txn.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format("2006-01-02"), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&note, "note", "", "free-form note describing the expense")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount (required)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
