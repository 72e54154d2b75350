package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wstdesk/wstdesk/internal/profile"
)

var (
	importFormat  string
	importReplace bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import profiles from a JSON or YAML file",
	Long:  "Import profiles from a file (or stdin with \"-\"). Imported entries update existing profiles with the same name; others are appended. With --replace the whole list is replaced.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return err
		}

		format := importFormat
		if format == "" {
			format = formatFromPath(path)
		}

		incoming, err := decodeProfiles(data, format)
		if err != nil {
			return err
		}

		for _, p := range incoming {
			if err := p.Validate(); err != nil {
				return err
			}
		}
		if err := checkUniqueNames(incoming); err != nil {
			return err
		}

		fs, err := openFileStore()
		if err != nil {
			return err
		}

		var merged []profile.Profile
		if importReplace {
			merged = incoming
		} else {
			existing, err := fs.LoadAll()
			if err != nil {
				return err
			}
			merged = mergeProfiles(existing, incoming)
		}

		if err := fs.SaveAll(merged); err != nil {
			return err
		}

		fmt.Printf("Imported %d profile(s), store now has %d.\n", len(incoming), len(merged))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: json or yaml (inferred from the file extension)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace the whole list instead of merging by name")
}

// mergeProfiles applies incoming entries over existing ones: same-name
// entries are updated in place, new names are appended in input order.
func mergeProfiles(existing, incoming []profile.Profile) []profile.Profile {
	merged := make([]profile.Profile, len(existing))
	copy(merged, existing)

	for _, in := range incoming {
		replaced := false
		for i, cur := range merged {
			if cur.Name == in.Name {
				merged[i] = in
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, in)
		}
	}
	return merged
}

func checkUniqueNames(list []profile.Profile) error {
	seen := make(map[string]bool, len(list))
	for _, p := range list {
		if seen[p.Name] {
			return fmt.Errorf("duplicate profile name %q in import", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
