package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a connection profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := openController()
		if err != nil {
			return err
		}

		name := args[0]
		found := false
		for _, p := range ctl.Profiles() {
			if p.Name == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("profile %q not found", name)
		}

		if !removeYes {
			confirmed, err := confirmPrompt(fmt.Sprintf("Delete profile %q?", name))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := ctl.Remove(name); err != nil {
			return err
		}

		fmt.Printf("Profile %q removed.\n", name)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
}
