package cmd

import (
	"fmt"

	"github.com/bnema/coresim/internal/domain"
	"github.com/spf13/cobra"
)

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the load balancing policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, kind := range domain.AllPolicies {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", kind, kind.DisplayName()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
