package rngvrf

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rngvrf/rngvrf-deploy/pkg/config"
)

func buildNetworksCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the configured networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			networks, err := config.LoadNetworks(v.GetString(flagConfig))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tURL\tCHAIN ID\tACCOUNTS\tDEFAULT")
			for _, name := range networks.Names() {
				n, _ := networks.Lookup(name)

				chainID := "-"
				if id, errID := n.ExpectedChainID(); errID == nil && id != 0 {
					chainID = fmt.Sprint(id)
				}

				def := ""
				if strings.EqualFold(name, networks.DefaultNetwork) {
					def = "*"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, n.URL, chainID, strings.Join(n.Accounts, ","), def)
			}

			return w.Flush()
		},
	}
}
