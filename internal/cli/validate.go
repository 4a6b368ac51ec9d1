package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fireflyframework/firefly-ecm/pkg/adapter"
	"github.com/fireflyframework/firefly-ecm/pkg/bootstrap"
	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML adapter configuration offline",
		Long: `Validate checks every enabled adapter entry against the built-in
adapter metadata: the type must resolve and the settings must cover the
technology's required configuration keys. The command exits non-zero when
any entry is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig(configPath)
			if err != nil {
				return err
			}
			return runValidate(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "file", "f", "ecm.yaml", "configuration file to validate")
	return cmd
}

func runValidate(cmd *cobra.Command, cfg *bootstrap.Config) error {
	s := DefaultStyles()
	out := cmd.OutOrStdout()
	invalid := 0

	for _, entry := range cfg.Adapters {
		if !entry.IsEnabled() {
			fmt.Fprintf(out, "%s %s\n", s.Muted.Render("SKIP"), entry.Type)
			continue
		}

		id, known := ecmcapabilities.ParseID(entry.Type)
		if !known {
			fmt.Fprintf(out, "%s %s %s\n", s.Warn.Render("WARN"), entry.Type,
				s.Muted.Render("(no built-in metadata, key check skipped)"))
			continue
		}

		desc, _ := adapter.DescriptorFor(id)
		missing := desc.MissingKeys(entry.SettingKeys())
		if len(missing) > 0 {
			invalid++
			fmt.Fprintf(out, "%s %s %s\n", s.Error.Render("FAIL"), id,
				s.Muted.Render("missing: "+strings.Join(missing, ", ")))
			continue
		}
		fmt.Fprintf(out, "%s %s\n", s.OK.Render("OK  "), id)
	}

	for capName, typeName := range cfg.Preferred {
		if _, ok := ecmcapabilities.ParseID(typeName); !ok {
			fmt.Fprintf(out, "%s preferred %s for %s has no built-in metadata\n",
				s.Warn.Render("WARN"), typeName, capName)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d adapter entries are invalid", invalid)
	}
	fmt.Fprintln(out, s.OK.Render("configuration is valid"))
	return nil
}
