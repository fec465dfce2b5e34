package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var agenciesCmd = &cobra.Command{
	Use:   "agencies",
	Short: "List registered agency profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := initEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tWEBSITE\tPAGES")
		for _, name := range e.Registry.Names() {
			p, _ := e.Registry.Get(name)
			fmt.Fprintf(w, "%s\t%s\t%d\n", p.Name, p.WebsiteURL, len(p.Pages))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(agenciesCmd)
}
