package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anmacmillan/pensionloss/internal/domain"
	"github.com/anmacmillan/pensionloss/internal/ogden"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the demo actuarial multiplier table for a gender",
	RunE: func(cmd *cobra.Command, args []string) error {
		genderFlag, _ := cmd.Flags().GetString("gender")
		gender, err := domain.ParseGender(genderFlag)
		if err != nil {
			return err
		}

		t := ogden.NewDemoProvider().Table(gender)
		fmt.Printf("Demo multipliers, %s, ages %d-%d\n\n", t.Ref, ogden.MinAge, ogden.MaxAge)

		w := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
		fmt.Fprint(w, "Age")
		for _, retAge := range domain.RetirementAges {
			fmt.Fprintf(w, "\tRetire at %d", retAge)
		}
		fmt.Fprintln(w)
		for _, row := range t.Rows {
			fmt.Fprintf(w, "%d", row.Age)
			for _, retAge := range domain.RetirementAges {
				fmt.Fprintf(w, "\t%s", row.Multipliers[retAge].StringFixed(2))
			}
			fmt.Fprintln(w)
		}
		return w.Flush()
	},
}

func init() {
	tableCmd.Flags().StringP("gender", "g", "male", "male or female")
	rootCmd.AddCommand(tableCmd)
}
