package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wstdesk/wstdesk/internal/controller"
	"github.com/wstdesk/wstdesk/internal/paths"
	"github.com/wstdesk/wstdesk/internal/profile"
	"github.com/wstdesk/wstdesk/internal/store"
)

var version = "0.1.0"

var storePath string

var rootCmd = &cobra.Command{
	Use:   "wstdesk",
	Short: "Manage wstunnel connection profiles",
	Long:  "wstdesk manages named wstunnel connection profiles (local listen address plus tunnel server) stored in a JSON config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the interactive UI
		return uiCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wstdesk %s\n", version)
	},
}

// openFileStore opens the profile store at --store (or the default path).
func openFileStore() (*profile.FileStore, error) {
	path := storePath
	if path == "" {
		path = paths.StoreFile()
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	return profile.NewFileStore(s), nil
}

// openController opens the store and hydrates a controller over it.
func openController() (*controller.Controller, error) {
	fs, err := openFileStore()
	if err != nil {
		return nil, err
	}
	ctl := controller.New(fs)
	if err := ctl.Load(); err != nil {
		return nil, err
	}
	return ctl, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the profile store file (default ~/.wstdesk/profiles.json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
