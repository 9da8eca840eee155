package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ceylonpulse/signalengine/internal/catalog"
	"github.com/ceylonpulse/signalengine/internal/model"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate signal catalogs",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [catalog.yaml]",
	Short: "List the signals in a catalog (builtin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}

		defs := cat.All()
		sort.Slice(defs, func(i, j int) bool {
			if defs[i].Pestle != defs[j].Pestle {
				return defs[i].Pestle < defs[j].Pestle
			}
			return defs[i].SignalID < defs[j].SignalID
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SIGNAL\tPESTLE\tPRIORITY\tMODE\tKEYWORDS")
		for _, def := range defs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				def.SignalID, def.Pestle, def.Priority, def.Mode, len(def.Keywords))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d signals\n", cat.Len())
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <catalog.yaml>",
	Short: "Validate a signal catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		counts := map[model.PestleCategory]int{}
		for _, def := range cat.All() {
			counts[def.Pestle]++
		}
		fmt.Printf("%s: %d signals OK\n", args[0], cat.Len())
		for _, p := range model.PestleCategories {
			if counts[p] > 0 {
				fmt.Printf("  %-14s %d\n", p, counts[p])
			}
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}
