package commands

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/somma-dev/somma/internal/ledger"
	"github.com/somma-dev/somma/internal/model"
	"github.com/somma-dev/somma/internal/money"
	"github.com/somma-dev/somma/internal/normalize"
)

type txFlags struct {
	date     string
	desc     string
	category string
	amount   string
	kind     string
	account  string
}

func (f *txFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.desc, "desc", "", "description")
	cmd.Flags().StringVar(&f.category, "category", "", "category")
	cmd.Flags().StringVar(&f.amount, "amount", "", "amount (e.g. 1234.56 or R$ 1.234,56)")
	cmd.Flags().StringVar(&f.kind, "kind", "expense", "kind (income or expense)")
	cmd.Flags().StringVar(&f.account, "account", normalize.DefaultAccount, "account name")
}

func (f *txFlags) transaction() model.Transaction {
	category := f.category
	if category == "" {
		category = normalize.DefaultCategory
	}
	return model.Transaction{
		Date:        normalize.ParseDate(f.date),
		Description: f.desc,
		Category:    category,
		Amount:      money.ParseAmount(f.amount),
		Kind:        money.NormalizeKind(f.kind),
		Account:     f.account,
	}
}

func newAddCommand(configPath *string) *cobra.Command {
	var flags txFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			ok, msg := e.store.Append(flags.transaction())
			if !ok {
				return errors.New(msg)
			}
			fmt.Println(msg)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions sorted by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			entries := e.store.Load()
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Tx.Date.Before(entries[j].Tx.Date)
			})

			fmt.Printf("%-5s %-10s %-30s %-18s %-8s %-14s %s\n",
				"ID", "DATE", "DESCRIPTION", "CATEGORY", "KIND", "AMOUNT", "ACCOUNT")
			for _, entry := range entries {
				tx := entry.Tx
				date := ledger.FormatDate(tx.Date)
				if date == "" {
					date = "—"
				}
				fmt.Printf("%-5d %-10s %-30s %-18s %-8s %-14s %s\n",
					entry.ID, date, truncate(tx.Description, 30), truncate(tx.Category, 18),
					tx.Kind, money.FormatBRL(tx.Amount), tx.Account)
			}
			return nil
		},
	}
}

func newEditCommand(configPath *string) *cobra.Command {
	var flags txFlags

	cmd := &cobra.Command{
		Use:   "edit <row-id>",
		Short: "Rewrite a transaction by its listed row ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row ID %q", args[0])
			}
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			e.store.Load() // mint the snapshot the ID addresses
			ok, msg := e.store.Update(id, flags.transaction())
			if !ok {
				return errors.New(msg)
			}
			fmt.Println(msg)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <row-id>",
		Short: "Delete a transaction by its listed row ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row ID %q", args[0])
			}
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			e.store.Load()
			ok, msg := e.store.Delete(id)
			if !ok {
				return errors.New(msg)
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
