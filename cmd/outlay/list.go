package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"outlay/internal/cli"
	"outlay/internal/filter"
)

// listOptions captures the filter flags of the list command.
type listOptions struct {
	category    string
	match       string
	fromStr     string
	toStr       string
	min         float64
	max         float64
	minSet      bool
	maxSet      bool
	matchedOnly bool
}

// buildFilter translates the set flags into a single conjunction filter. It
// returns nil when no filter flag was provided, meaning "list everything".
func buildFilter(opts listOptions) (filter.Filter, error) {
	var parts []filter.Filter

	if opts.category != "" {
		parts = append(parts, filter.Category{Name: opts.category})
	}
	if opts.match != "" {
		parts = append(parts, filter.Text{Contains: opts.match})
	}
	if opts.minSet || opts.maxSet {
		amounts := filter.AmountRange{}
		if opts.minSet {
			amounts.Min = &opts.min
		}
		if opts.maxSet {
			amounts.Max = &opts.max
		}
		parts = append(parts, amounts)
	}
	if opts.fromStr != "" || opts.toStr != "" {
		dates := filter.DateRange{}
		if opts.fromStr != "" {
			from, err := parseDate(opts.fromStr)
			if err != nil {
				return nil, err
			}
			dates.From = &from
		}
		if opts.toStr != "" {
			to, err := parseDate(opts.toStr)
			if err != nil {
				return nil, err
			}
			dates.To = &to
		}
		parts = append(parts, dates)
	}

	if len(parts) == 0 {
		return nil, nil
	}
	return filter.All(parts...), nil
}

func listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, optionally filtered",
		Long: `List the ledger's transactions in insertion order. Filter flags mark
matching rows; --matched-only hides everything else. The match set lives
only for the duration of the command and is discarded by the next change
to the ledger.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()

			opts.minSet = cmd.Flags().Changed("min")
			opts.maxSet = cmd.Flags().Changed("max")

			activeFilter, err := buildFilter(opts)
			if err != nil {
				return err
			}
			if opts.matchedOnly && activeFilter == nil {
				return fmt.Errorf("--matched-only requires at least one filter flag")
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

			txns := ledger.Transactions()
			if activeFilter != nil {
				indices := filter.MatchingIndices(txns, activeFilter)
				if err := ledger.SetMatchedFilterIndices(indices); err != nil {
					return fmt.Errorf("failed to record matched indices: %w", err)
				}
			}

			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions recorded. Use 'outlay add' to record one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Ledger"))
			matched := ledger.MatchedFilterIndices()
			cli.RenderTransactions(os.Stdout, txns, matched, opts.matchedOnly)
			cli.RenderSummary(os.Stdout, len(txns), len(matched), activeFilter != nil)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "only match transactions in this category")
	cmd.Flags().StringVar(&opts.match, "match", "", "only match transactions whose note contains this text")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "only match transactions with at least this amount")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "only match transactions with at most this amount")
	cmd.Flags().StringVar(&opts.fromStr, "from", "", "only match transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.toStr, "to", "", "only match transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.matchedOnly, "matched-only", false, "hide rows that did not match the filter")

	return cmd
}
