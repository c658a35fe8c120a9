package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCmdEnv(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "mazecache",
		Short:         "TVMaze metadata cache CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if runsWithoutConfig(cmd) {
				return nil
			}
			_, err := ctx.loadConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the config file")

	rootCmd.AddCommand(newLookupCommand(ctx))
	rootCmd.AddCommand(newEpisodeCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newAliasesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// configFreeAnnotation marks commands that must work before any config file
// exists, such as "config init".
const configFreeAnnotation = "configFree"

func runsWithoutConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[configFreeAnnotation]; ok {
			return true
		}
	}
	return false
}
