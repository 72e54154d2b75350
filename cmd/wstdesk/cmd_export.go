package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wstdesk/wstdesk/internal/profile"
	"go.yaml.in/yaml/v3"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all profiles as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := openFileStore()
		if err != nil {
			return err
		}

		list, err := fs.LoadAll()
		if err != nil {
			return err
		}

		format := exportFormat
		if format == "" {
			format = formatFromPath(exportOutput)
		}

		out := os.Stdout
		if exportOutput != "" && exportOutput != "-" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return encodeProfiles(out, format, list)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: json or yaml (default json, inferred from --output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}

// formatFromPath infers json/yaml from a file extension, defaulting to json.
func formatFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return "yaml"
	default:
		return "json"
	}
}

func encodeProfiles(w io.Writer, format string, list []profile.Profile) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(list)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func decodeProfiles(data []byte, format string) ([]profile.Profile, error) {
	var list []profile.Profile
	switch format {
	case "json":
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	return list, nil
}
