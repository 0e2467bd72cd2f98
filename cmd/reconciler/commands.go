package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var org, source string
	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import a CSV bank statement, skipping duplicates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open statement: %w", err)
			}
			defer f.Close()

			if source == "" {
				source = a.cfg.Import.DefaultSource
			}
			result, err := a.svc.ImportStatement(cmd.Context(), org, f, source)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&org, "org", "", "organization id (required)")
	cmd.Flags().StringVar(&source, "source", "", "import source tag")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func newAutoMatchCmd(a *app) *cobra.Command {
	var flags rangeFlags
	cmd := &cobra.Command{
		Use:   "automatch",
		Short: "Auto-match unreconciled payments in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := flags.parse()
			if err != nil {
				return err
			}
			result, err := a.svc.AutoMatchPayments(cmd.Context(), flags.org, start, end)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newSessionCmd(a *app) *cobra.Command {
	var flags rangeFlags
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Create a reconciliation session for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := flags.parse()
			if err != nil {
				return err
			}
			result, err := a.svc.CreateReconciliation(cmd.Context(), flags.org, start, end)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newMatchCmd(a *app) *cobra.Command {
	var recID, paymentID, txID, by string
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Manually match a payment to a bank transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, 3)
			for i, raw := range []string{recID, paymentID, txID} {
				id, err := uuid.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid id %q: %w", raw, err)
				}
				ids[i] = id
			}
			if err := a.svc.ManualMatch(cmd.Context(), ids[0], ids[1], ids[2], by); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "matched")
			return nil
		},
	}
	cmd.Flags().StringVar(&recID, "reconciliation", "", "reconciliation id (required)")
	cmd.Flags().StringVar(&paymentID, "payment", "", "payment id (required)")
	cmd.Flags().StringVar(&txID, "transaction", "", "bank transaction id (required)")
	cmd.Flags().StringVar(&by, "by", os.Getenv("USER"), "operator recorded in the audit log")
	_ = cmd.MarkFlagRequired("reconciliation")
	_ = cmd.MarkFlagRequired("payment")
	_ = cmd.MarkFlagRequired("transaction")
	return cmd
}
