package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IshanviChauhan/Interview-Bot/internal/prompts"
)

var rolesCommand = &cobra.Command{
	Use:   "roles",
	Short: "List roles and domains with tailored question guidance",
	Long: `Lists the roles the question generator has specific guidance for,
with their known domains. Any role works with "run"; unlisted roles
fall back to general guidance.`,
	RunE: runRolesCmd,
}

func init() {
	rootCmd.AddCommand(rolesCommand)
}

func runRolesCmd(_ *cobra.Command, _ []string) error {
	for _, role := range prompts.Roles() {
		fmt.Println(role)
		for _, domain := range prompts.DomainsForRole(role) {
			fmt.Printf("  - %s\n", domain)
		}
	}
	fmt.Println("\nOther roles use general guidance.")
	return nil
}
