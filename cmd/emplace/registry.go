package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/emplace/pkg/filesystem"
	"github.com/arthur-debert/emplace/pkg/paths"
	"github.com/arthur-debert/emplace/pkg/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage the private environment registry",
	Long: `Inspect and mutate the registry mapping package names to private
environment prefixes. The registry lives at its well-known path inside
the root prefix's metadata directory.`,
}

var registryAddCmd = &cobra.Command{
	Use:   "add NAME PREFIX",
	Short: "Record a package's private environment prefix",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := defaultRegistry()
		if err != nil {
			return err
		}
		return r.Upsert(args[0], args[1])
	},
}

var registryRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a package from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := defaultRegistry()
		if err != nil {
			return err
		}
		return r.Remove(args[0])
	},
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered private environments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := defaultRegistry()
		if err != nil {
			return err
		}
		content := r.Read()
		names := make([]string, 0, len(content))
		for name := range content {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, content[name])
		}
		return nil
	},
}

// defaultRegistry opens the registry at its well-known path, honoring a
// configured filename override.
func defaultRegistry() (*registry.Registry, error) {
	p, err := paths.NewWithRegistryFilename("", cfg.Registry.Filename)
	if err != nil {
		return nil, err
	}
	return registry.NewDefault(filesystem.NewOS(), p), nil
}

func init() {
	registryCmd.AddCommand(registryAddCmd)
	registryCmd.AddCommand(registryRemoveCmd)
	registryCmd.AddCommand(registryListCmd)
}
