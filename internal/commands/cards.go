package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/somma-dev/somma/internal/money"
	"github.com/somma-dev/somma/internal/registry"
)

func newCardsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage registered credit cards",
	}
	cmd.AddCommand(newCardsListCommand(configPath))
	cmd.AddCommand(newCardsAddCommand(configPath))
	cmd.AddCommand(newCardsRemoveCommand(configPath))
	return cmd
}

func newCardsListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cards with their current-month statement totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			statements := e.engine.CardStatements(e.store.Transactions(), e.reg.Cards(), time.Now())

			fmt.Printf("%-5s %-22s %-14s %-14s %-8s %s\n", "ID", "NAME", "LIMIT", "STATEMENT", "USED%", "CLOSE/DUE")
			for _, st := range statements {
				c := st.Card
				fmt.Printf("%-5d %-22s %-14s %-14s %-8s %d/%d\n",
					c.ID, c.Name, money.FormatBRL(c.Limit), money.FormatBRL(st.Total),
					st.Utilization.StringFixed(1), c.ClosingDay, c.DueDay)
			}
			return nil
		},
	}
}

func newCardsAddCommand(configPath *string) *cobra.Command {
	var name, bankID, limit string
	var closingDay, dueDay int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a credit card",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			card, err := e.reg.CreateCard(registry.CardParams{
				Name:       name,
				BankID:     bankID,
				Limit:      money.ParseAmount(limit),
				ClosingDay: closingDay,
				DueDay:     dueDay,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Card %q created (id %d)\n", card.Name, card.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "card name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&bankID, "bank", "other", "bank catalog id")
	cmd.Flags().StringVar(&limit, "limit", "", "credit limit (required)")
	_ = cmd.MarkFlagRequired("limit")
	cmd.Flags().IntVar(&closingDay, "closing-day", 1, "statement closing day (1-31)")
	cmd.Flags().IntVar(&dueDay, "due-day", 10, "payment due day (1-31)")
	return cmd
}

func newCardsRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a card by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[0])
			}
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			if err := e.reg.DeleteCard(id); err != nil {
				return err
			}
			fmt.Printf("Card %d removed\n", id)
			return nil
		},
	}
}
