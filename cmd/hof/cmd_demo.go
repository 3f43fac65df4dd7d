package main

import (
	"fmt"

	"github.com/sghaida/hof/hof"
	"github.com/sghaida/hof/zoo"
	"github.com/spf13/cobra"
)

var demoAnimals = []zoo.Animal{
	{Name: "Rex", Species: zoo.SpeciesDog},
	{Name: "Tom", Species: zoo.SpeciesCat},
	{Name: "Fido", Species: zoo.SpeciesDog},
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every example end to end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "greaterThan10(11) = %t\n", hof.GreaterThan10(11))
			fmt.Fprintf(out, "greaterThan100(11) = %t\n", hof.GreaterThan100(11))
			fmt.Fprintf(out, "triple(5) = %d\n", hof.Triple(5))
			fmt.Fprintf(out, "quadruple(5) = %d\n", hof.Quadruple(5))

			fmt.Fprintf(out, "dogs = %v\n", names(zoo.Dogs(demoAnimals)))
			fmt.Fprintf(out, "otherAnimals = %v\n", names(zoo.OtherAnimals(demoAnimals)))

			hof.DoWhen(hof.GreaterThan10(11), func() { fmt.Fprintln(out, "hey") })
			hof.DoWhen(hof.GreaterThan10(9), func() { fmt.Fprintln(out, "I won't be run") })

			a.logger.Debug("demo finished")
			return nil
		},
	}
}

func names(animals []zoo.Animal) []string {
	return hof.Map(animals, func(an zoo.Animal) string { return an.Name })
}
