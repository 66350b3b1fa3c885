package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/danmuck/callsdk/internal/catalog"
	"github.com/danmuck/callsdk/internal/model"
	"github.com/spf13/cobra"
)

func newRecordsCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List every record in the catalog",
		Example: `  # All records
  callsdk records

  # Only conference records
  callsdk records --group conferences`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tGROUP\tDIRECTION\tFIELDS\tSUMMARY")
			for _, info := range catalog.Registry().List() {
				if group != "" && !strings.EqualFold(info.Group, group) {
					continue
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", info.Name, info.Group, info.Direction, info.Fields, info.Summary)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Only list records of this API group")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME",
		Short: "Show the field table of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupEntry(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (%s, %s)\n", entry.Schema.Name(), entry.Group, entry.Direction)
			if entry.Summary != "" {
				_, _ = fmt.Fprintf(out, "  %s\n", entry.Summary)
			}
			_, _ = fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "FIELD\tWIRE\tTYPE\tREQUIRED\tNULLABLE\tENUM POLICY")
			for _, f := range model.Describe(entry.Schema) {
				policy := "-"
				if f.Type.Kind == model.KindEnum {
					policy = f.Policy.String()
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					f.Name, f.WireName, f.Type, yesNo(f.Required), yesNo(f.Nullable), policy)
			}
			return w.Flush()
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
