package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/tabkit/internal/prefs"
)

func SelectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selections",
		Short: "Inspect and manage remembered tab selections",
	}
	cmd.AddCommand(selectionsListCmd(), selectionsResetCmd(), selectionsExportCmd(), selectionsImportCmd())
	return cmd
}

func selectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remembered selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()
			list, err := e.services.Selections.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%s\n", s.SetName, s.TabKey, s.TabIndex, s.SetID)
			}
			return nil
		},
	}
}

func selectionsResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget every remembered selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.services.Maintenance.Reset(cmd.Context()); err != nil {
				return err
			}
			e.log.Info("selections reset from cli")
			fmt.Fprintln(cmd.OutOrStdout(), "selections cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

func selectionsExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write remembered selections to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()
			list, err := e.services.Selections.List(cmd.Context())
			if err != nil {
				return err
			}
			if err := prefs.SaveSelections(args[0], list); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d selections to %s\n", len(list), args[0])
			return nil
		},
	}
}

func selectionsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load selections from a JSON file written by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.Close()
			list, err := prefs.LoadSelections(args[0])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			n, err := e.services.Selections.Import(cmd.Context(), list)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d selections\n", n)
			return nil
		},
	}
}
