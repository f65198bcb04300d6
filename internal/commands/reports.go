package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/somma-dev/somma/internal/model"
	"github.com/somma-dev/somma/internal/money"
	"github.com/somma-dev/somma/internal/normalize"
)

func newBalanceCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show current balances per account group",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			txs := e.store.Transactions()
			totals := e.engine.GroupTotals(txs)

			for _, group := range model.Groups {
				t := totals[group]
				current := e.reg.InitialBalance(group).Add(t.Net())
				fmt.Printf("%-10s income %-14s expense %-14s balance %s\n",
					group, money.FormatBRL(t.Income), money.FormatBRL(t.Expense), money.FormatBRL(current))
			}
			return nil
		},
	}
}

func newCashflowCommand(configPath *string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Show the daily cash-flow ledger for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := monthRange(month)
			if err != nil {
				return err
			}
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			txs := e.store.Transactions()
			rows := e.engine.DailyCashflow(txs, start, end)

			fmt.Printf("Prior balance: available %s, benefit %s\n",
				money.FormatBRL(e.engine.PriorBalance(txs, model.GroupAvailable, start)),
				money.FormatBRL(e.engine.PriorBalance(txs, model.GroupBenefit, start)))
			fmt.Printf("%-12s %-14s %-14s %-14s %-16s %s\n",
				"DATE", "IN", "OUT", "NET", "AVAILABLE", "BENEFIT")
			for _, row := range rows {
				fmt.Printf("%-12s %-14s %-14s %-14s %-16s %s\n",
					row.Date.Format("2006-01-02"),
					money.FormatBRL(row.In), money.FormatBRL(row.Out), money.FormatBRL(row.Net),
					money.FormatBRL(row.AvailableBalance), money.FormatBRL(row.BenefitBalance))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default: current month)")
	return cmd
}

func newSummaryCommand(configPath *string) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expense, and transfer totals for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := normalize.ParseDate(from)
			end := normalize.ParseDate(to)
			if start.IsZero() || end.IsZero() {
				now := time.Now()
				start, end, _ = monthRange(now.Format("2006-01"))
			}

			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			s := e.engine.PeriodSummary(e.store.Transactions(), start, end)

			fmt.Printf("Period %s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
			fmt.Printf("  income    %s\n", money.FormatBRL(s.Income))
			fmt.Printf("  expense   %s\n", money.FormatBRL(s.Expense))
			fmt.Printf("  net       %s\n", money.FormatBRL(s.Net))
			fmt.Printf("  transfers %s\n", money.FormatBRL(s.TransferNet))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

func newStatusCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active storage backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			st := e.store.Status()
			durable := "not durable"
			if st.Durable {
				durable = "durable"
			}
			fmt.Printf("[%s] %s (%s)\n", st.Severity, st.Label, durable)
			return nil
		},
	}
}

// monthRange resolves a YYYY-MM string (or the current month when
// empty) to the first and last day of that month.
func monthRange(month string) (time.Time, time.Time, error) {
	ref := time.Now()
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
		}
		ref = parsed
	}
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}
