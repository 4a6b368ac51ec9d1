package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

func newAdaptersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adapters",
		Short: "Work with the known adapter technologies",
	}
	cmd.AddCommand(newAdaptersListCmd())
	cmd.AddCommand(newAdaptersGetCmd())
	return cmd
}

func newAdaptersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the known adapter technologies",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := DefaultStyles()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, s.Title.Render("Known adapters"))
			fmt.Fprintf(out, "%s\n", s.Header.Render(fmt.Sprintf(
				"%-16s %-28s %-24s %s", "ID", "NAME", "VENDOR", "CAPABILITIES")))

			for _, id := range ecmcapabilities.IDs() {
				info := ecmcapabilities.MustGet(id)
				caps := make([]string, 0, len(info.Capabilities))
				for _, c := range info.Capabilities {
					caps = append(caps, string(c))
				}
				fmt.Fprintf(out, "%s\n", s.Cell.Render(fmt.Sprintf(
					"%-16s %-28s %-24s %s",
					id, info.Name, info.Vendor, strings.Join(caps, ", "))))
			}
			return nil
		},
	}
}

func newAdaptersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <adapter-id>",
		Short: "Show the metadata for one adapter technology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := ecmcapabilities.ParseID(args[0])
			if !ok {
				return fmt.Errorf("unknown adapter %q", args[0])
			}
			info := ecmcapabilities.MustGet(id)

			s := DefaultStyles()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, s.Title.Render(info.Name))
			row := func(label, value string) {
				if value == "" {
					value = s.Muted.Render("-")
				}
				fmt.Fprintf(out, "%s %s\n", s.Header.Render(fmt.Sprintf("%-18s", label)), value)
			}
			row("ID", string(info.ID))
			row("Vendor", info.Vendor)
			row("Minimum profile", info.MinimumProfile.String())
			row("Capabilities", joinCaps(info.Capabilities))
			row("Required keys", strings.Join(info.RequiredConfigKeys, ", "))
			row("Optional keys", strings.Join(info.OptionalConfigKeys, ", "))
			row("Aliases", strings.Join(info.Aliases, ", "))
			return nil
		},
	}
}

func joinCaps(caps []ecmcapabilities.Capability) string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, string(c))
	}
	return strings.Join(out, ", ")
}
