package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wstdesk/wstdesk/internal/profile"
)

var (
	addListen string
	addServer string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a connection profile",
	Long:  "Add a connection profile. Fields not supplied as flags are collected interactively.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := openController()
		if err != nil {
			return err
		}

		p := profile.Profile{ListenAddr: addListen}
		if len(args) == 1 {
			p.Name = args[0]
		}
		if addServer != "" {
			addr, err := profile.ParseServerAddr(addServer)
			if err != nil {
				return err
			}
			p.ServerAddr = addr
		}

		// Fully specified on the command line: skip the form.
		if p.Validate() != nil {
			if err := promptProfileForm(&p); err != nil {
				return err
			}
		}

		ctl.OpenForCreate()
		if err := ctl.Commit(p); err != nil {
			return err
		}

		fmt.Printf("Profile %q added.\n", p.Name)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addListen, "listen", "", "Local listen address (host:port)")
	addCmd.Flags().StringVar(&addServer, "server", "", "Tunnel server URL (ws, wss, http or https)")
}
