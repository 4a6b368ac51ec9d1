package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

func newCapabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "List the capability tags and their contract interfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := DefaultStyles()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, s.Title.Render("Capability contracts"))
			fmt.Fprintf(out, "%s\n", s.Header.Render(fmt.Sprintf(
				"%-24s %-22s %s", "CAPABILITY", "INTERFACE", "KNOWN PROVIDERS")))

			for _, cap := range ecmcapabilities.Capabilities() {
				iface, _ := ports.InterfaceName(cap)
				providers := 0
				for _, id := range ecmcapabilities.IDs() {
					if ecmcapabilities.Provides(id, cap) {
						providers++
					}
				}
				fmt.Fprintf(out, "%s\n", s.Cell.Render(fmt.Sprintf(
					"%-24s %-22s %d", cap, iface, providers)))
			}
			return nil
		},
	}
}
