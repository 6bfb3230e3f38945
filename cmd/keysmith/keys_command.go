package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"keysmith/internal/keytable"
)

func newKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "keys [name...]",
		Short:       "List the key table",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := keytable.Keys()
			if len(args) > 0 {
				selected := make([]keytable.Key, 0, len(args))
				for _, name := range args {
					key, ok := keytable.Lookup(keys, name)
					if !ok {
						return fmt.Errorf("unknown key %q", name)
					}
					selected = append(selected, key)
				}
				keys = selected
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				size := ""
				if key.FontSize > 0 {
					size = strconv.Itoa(key.FontSize)
				}
				rows = append(rows, []string{
					key.Name,
					strconv.Itoa(key.X),
					strconv.Itoa(key.Y),
					strconv.Itoa(key.Width),
					strings.Join(key.Labels, " / "),
					size,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "X", "Y", "Width", "Labels", "Font Size"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%d keys\n", len(keys))
			return nil
		},
	}
}
