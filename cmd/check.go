/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/gocalix/calculix"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check model.yaml [...]",
	Short: "Check that YAML model files can be written as CalculiX decks",
	Long: `
Parses each model file, converts its quantities, checks every step against
the procedure capabilities and builds the deck without writing it.

gocalix check -I model.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if in, _ := cmd.Flags().GetString("input"); in != "" {
			files = append([]string{in}, files...)
		}
		if len(files) == 0 {
			return fmt.Errorf("must supply a model file (-I, --input) in YAML format")
		}
		system, err := unitSystem()
		if err != nil {
			return err
		}
		show, _ := cmd.Flags().GetBool("print")
		for _, file := range files {
			ip, m, err := readModel(file, system)
			if err != nil {
				return err
			}
			if show {
				ip.Print()
			}
			deck, err := calculix.NewDeck(m, calculix.Options{Logger: logger})
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d steps, %d keywords\n", file, len(m.Steps), len(deck.Keywords()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("input", "I", "", "YAML model file")
	checkCmd.Flags().BoolP("print", "p", false, "print a summary of the parsed input")
}
