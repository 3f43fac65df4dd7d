package main

import (
	"fmt"

	"github.com/sghaida/hof/hof"
	"github.com/sghaida/hof/zoo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) animalsCmd() *cobra.Command {
	var (
		file    string
		species string
		where   string
		reject  bool
	)
	cmd := &cobra.Command{
		Use:   "animals",
		Short: "Filter or reject animals with a species predicate",
		Long: `Loads animals from a YAML file and keeps (or, with --reject, drops)
those matching a predicate.

File format:
  animals:
    - name: Rex
      species: dog

Example:
  hof animals --file animals.yaml
  hof animals --file animals.yaml --species cat --reject
  hof animals --file animals.yaml --where is-fish`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			animals, err := zoo.LoadFile(file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("species") {
				species = a.cfg.Species
			}

			pred := zoo.IsSpecies(species)
			if where != "" {
				pred, err = zoo.SpeciesRegistry(animals).Resolve(where)
				if err != nil {
					return err
				}
			}

			var picked []zoo.Animal
			if reject {
				picked = hof.Reject(animals, pred)
			} else {
				picked = hof.Filter(animals, pred)
			}
			a.logger.Info("animals",
				zap.String("file", file),
				zap.String("species", species),
				zap.String("where", where),
				zap.Bool("reject", reject),
				zap.Int("loaded", len(animals)),
				zap.Int("picked", len(picked)),
			)

			out := cmd.OutOrStdout()
			for _, an := range picked {
				fmt.Fprintf(out, "%s (%s)\n", an.Name, an.Species)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with an animals list")
	cmd.Flags().StringVar(&species, "species", "dog", "species to match; defaults to HOF_SPECIES")
	cmd.Flags().StringVar(&where, "where", "", "named predicate (dog|cat|is-<species>); overrides --species")
	cmd.Flags().BoolVar(&reject, "reject", false, "drop matches instead of keeping them")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
