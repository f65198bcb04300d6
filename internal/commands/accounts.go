package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/somma-dev/somma/internal/model"
	"github.com/somma-dev/somma/internal/money"
	"github.com/somma-dev/somma/internal/registry"
)

func newAccountsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage registered bank accounts",
	}
	cmd.AddCommand(newAccountsListCommand(configPath))
	cmd.AddCommand(newAccountsAddCommand(configPath))
	cmd.AddCommand(newAccountsRemoveCommand(configPath))
	return cmd
}

func newAccountsListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			fmt.Printf("%-5s %-22s %-20s %-10s %s\n", "ID", "NAME", "BANK", "GROUP", "INITIAL")
			for _, a := range e.reg.Accounts() {
				fmt.Printf("%-5d %-22s %-20s %-10s %s\n",
					a.ID, a.Name, model.BankByID(a.BankID).Name, a.Group, money.FormatBRL(a.InitialBalance))
			}
			return nil
		},
	}
}

func newAccountsAddCommand(configPath *string) *cobra.Command {
	var name, bankID, initial, group string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a bank account",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			acct, err := e.reg.CreateAccount(registry.AccountParams{
				Name:           name,
				BankID:         bankID,
				InitialBalance: money.ParseAmount(initial),
				Group:          model.AccountGroup(group),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Account %q created (id %d)\n", acct.Name, acct.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&bankID, "bank", "other", "bank catalog id")
	cmd.Flags().StringVar(&initial, "initial", "0", "initial balance")
	cmd.Flags().StringVar(&group, "group", string(model.GroupAvailable), "account group (available or benefit)")
	return cmd
}

func newAccountsRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an account by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[0])
			}
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			if err := e.reg.DeleteAccount(id); err != nil {
				return err
			}
			fmt.Printf("Account %d removed\n", id)
			return nil
		},
	}
}
