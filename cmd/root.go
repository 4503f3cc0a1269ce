package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()

	rootCmd := &cobra.Command{
		Use:           "coresim",
		Short:         "Simulate job-to-core load balancing policies",
		Long:          "coresim assigns a fixed list of jobs to four cores in two rounds under Round Robin, Least Loaded Core and Random Assignment, then prints each core's jobs and the makespan after every round.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.Int64("seed", 0, "seed for the random assignment policy (default: derived from the clock)")
	flags.StringSlice("policy", nil, "policy to run, repeatable (round-robin, least-loaded, random)")
	flags.String("least-loaded", "fixed", "least-loaded mode: fixed or adaptive")
	flags.String("format", formatText, "output format: text, pretty, json or yaml")
	flags.String("workload", "", "TOML workload file replacing the built-in job list")
	flags.String("metrics-out", "", "write Prometheus metrics for the run to this file")
	flags.Bool("trace", false, "print OpenTelemetry spans to stderr")

	persistent := rootCmd.PersistentFlags()
	persistent.String("log-level", defaultLogLevel, "log level: debug, info, warn or error")
	persistent.String("log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPoliciesCmd(),
	)

	return rootCmd
}
