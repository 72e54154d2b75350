package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List connection profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := openFileStore()
		if err != nil {
			return err
		}

		list, err := fs.LoadAll()
		if err != nil {
			return err
		}

		if len(list) == 0 {
			fmt.Println("No profiles configured.")
			return nil
		}

		for _, p := range list {
			fmt.Printf("  %-16s %s -> %s\n", p.Name, p.ListenAddr, p.ServerAddr)
		}

		return nil
	},
}
