package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wstdesk/wstdesk/internal/profile"
)

var (
	editListen string
	editServer string
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a connection profile",
	Long:  "Edit a connection profile in place. Without flags, all fields are edited interactively.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := openController()
		if err != nil {
			return err
		}

		name := args[0]
		p, err := ctl.OpenForEdit(name)
		if err != nil {
			return err
		}

		if editListen == "" && editServer == "" {
			if err := promptProfileForm(&p); err != nil {
				return err
			}
		} else {
			if editListen != "" {
				p.ListenAddr = editListen
			}
			if editServer != "" {
				addr, err := profile.ParseServerAddr(editServer)
				if err != nil {
					return err
				}
				p.ServerAddr = addr
			}
		}

		if err := ctl.UpdateInPlace(name, p); err != nil {
			return err
		}

		if p.Name != name {
			fmt.Printf("Profile %q updated (renamed to %q).\n", name, p.Name)
		} else {
			fmt.Printf("Profile %q updated.\n", name)
		}
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editListen, "listen", "", "New local listen address (host:port)")
	editCmd.Flags().StringVar(&editServer, "server", "", "New tunnel server URL (ws, wss, http or https)")
}
