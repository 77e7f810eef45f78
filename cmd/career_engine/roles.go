package main

import (
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the career roles in the catalog",
	RunE:  runRoles,
}

var rolesOutput string

func init() {
	rolesCmd.Flags().StringVarP(&rolesOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	e, deps, err := buildEngine(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer deps.close()

	return writeOutput(cmd.OutOrStdout(), rolesOutput, map[string]any{"roles": e.ListRoles()})
}
