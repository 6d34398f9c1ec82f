package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Offline cache maintenance",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every offline cache entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		if !e.cache().ClearAllCache(cmd.Context()) {
			return errors.New("cache clear failed, see log")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "offline cache cleared")
		return nil
	},
}

var cacheRemoveCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Remove one offline cache entry (for example providers:electrician)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		if !e.cache().RemoveCachedData(cmd.Context(), args[0]) {
			return fmt.Errorf("cache remove %q failed, see log", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheRemoveCmd)
}
