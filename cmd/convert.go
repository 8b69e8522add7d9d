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

	"github.com/notargets/gocalix/units"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert value [...]",
	Short: "Convert quantities into the unit of a unit system",
	Long: `
Parses each value as a quantity of the given kind and prints it in the unit
the unit system uses for that kind.

gocalix convert --quantity Pressure --units MM_TON_S_C "210 GPa" "30 ksi"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("quantity")
		q, ok := units.ParseQuantityKind(name)
		if !ok {
			return fmt.Errorf("unknown quantity kind %q", name)
		}
		system, err := unitSystem()
		if err != nil {
			return err
		}
		conv := units.NewConverter(q, units.NewContext(system))
		for _, arg := range args {
			v, err := conv.Parse(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), conv.Format(v))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("quantity", "q", "Length", "quantity kind, e.g. Length, Force, Pressure, Temperature")
}
