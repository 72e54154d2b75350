package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one profile in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := openFileStore()
		if err != nil {
			return err
		}

		list, err := fs.LoadAll()
		if err != nil {
			return err
		}

		name := args[0]
		for _, p := range list {
			if p.Name != name {
				continue
			}
			fmt.Printf("Name:           %s\n", p.Name)
			fmt.Printf("Listen address: %s\n", p.ListenAddr)
			fmt.Printf("Server address: %s\n", p.ServerAddr)
			fmt.Printf("  scheme: %s\n", p.ServerAddr.Scheme)
			fmt.Printf("  host:   %s\n", p.ServerAddr.Host)
			return nil
		}

		return fmt.Errorf("profile %q not found", name)
	},
}
