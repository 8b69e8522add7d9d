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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/gocalix/InputParameters"
	"github.com/notargets/gocalix/calculix"
	"github.com/notargets/gocalix/model"
	"github.com/notargets/gocalix/readfiles"
	"github.com/notargets/gocalix/units"
)

const exampleFile = `
########################################
Title: Bracket
UnitSystem: MM_TON_S_C # MM_TON_S_C, M_KG_S_C, M_KG_S_K, IN_LB_S_F or Unitless
Include: [mesh.inp] # or MeshFile: bracket.su2 to import an SU2 mesh
Materials:
  - Name: Steel
    Density: 7.85e-9 t/mm^3
    Elastic: [{Young: 210 GPa, Poisson: 0.3}]
Sections:
  - {Type: Solid, Elset: Eall, Material: Steel}
Steps:
  - Name: Step-1
    Type: Static
    BoundaryConditions:
      - {Name: Fix, Type: Fixed, Region: Nfix}
    Loads:
      - {Name: Push, Type: CLoad, Region: Nload, F2: -100 N}
    HistoryOutputs:
      - {Name: RF, Type: Node, Region: Nfix, Variables: [RF], Totals: Only}
########################################
`

type writeOptions struct {
	System    units.System
	CRLF      bool
	OutputDir string
	Jobs      int
}

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write [model.yaml ...]",
	Short: "Write CalculiX input decks from YAML model files",
	Long: `
Writes one input deck per model file. A deck is written whole or not at all:
a model that cannot be expressed in CalculiX leaves no output file behind.

gocalix write -I model.yaml -o model.inp
gocalix write --jobs 4 --output-dir decks a.yaml b.yaml c.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if in, _ := cmd.Flags().GetString("input"); in != "" {
			files = append([]string{in}, files...)
		}
		if len(files) == 0 {
			fmt.Printf("Example File:%s\n", exampleFile)
			return fmt.Errorf("must supply a model file (-I, --input) in YAML format")
		}
		output, _ := cmd.Flags().GetString("output")
		if output != "" && len(files) > 1 {
			return fmt.Errorf("--output names a single deck, %d model files given", len(files))
		}
		system, err := unitSystem()
		if err != nil {
			return err
		}
		opts := writeOptions{
			System:    system,
			CRLF:      viper.GetBool("crlf"),
			OutputDir: viper.GetString("output-dir"),
			Jobs:      viper.GetInt("jobs"),
		}
		if output == "-" {
			deck, err := buildDeck(files[0], opts, logger)
			if err != nil {
				return err
			}
			_, err = deck.WriteTo(cmd.OutOrStdout())
			return err
		}
		return writeDecks(context.Background(), files, output, opts, logger)
	},
}

// readModel parses a YAML model file and the SU2 mesh it names, system
// applies when the file names no unit system
func readModel(file string, system units.System) (*InputParameters.InputParameters, *model.Model, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}
	ip := &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", file, err)
	}
	m, err := ip.ToModel(system)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", file, err)
	}
	if ip.MeshFile != "" {
		meshFile := ip.MeshFile
		if !filepath.IsAbs(meshFile) {
			meshFile = filepath.Join(filepath.Dir(file), meshFile)
		}
		sm, err := readfiles.ReadSU2File(meshFile, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", file, err)
		}
		sm.AddTo(m)
	}
	return ip, m, nil
}

func buildDeck(file string, opts writeOptions, log *zap.Logger) (*calculix.Deck, error) {
	_, m, err := readModel(file, opts.System)
	if err != nil {
		return nil, err
	}
	deck, err := calculix.NewDeck(m, calculix.Options{CRLF: opts.CRLF, Logger: log.With(zap.String("file", file))})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return deck, nil
}

// deckPath is the .inp file written for a model file
func deckPath(file, output, outputDir string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".inp"
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(file), base)
}

// writeDecks converts the model files concurrently, each file owning its
// model and deck. The first failure cancels the files not yet started.
// Two files writing the same deck are refused before anything is written.
func writeDecks(ctx context.Context, files []string, output string, opts writeOptions, log *zap.Logger) error {
	paths, err := deckPaths(files, output, opts.OutputDir)
	if err != nil {
		return err
	}
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return err
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			deck, err := buildDeck(file, opts, log)
			if err != nil {
				return err
			}
			if err = writeFileAtomic(paths[i], []byte(deck.String())); err != nil {
				return err
			}
			log.Info("deck written", zap.String("file", file), zap.String("deck", paths[i]),
				zap.Int("keywords", len(deck.Keywords())))
			return nil
		})
	}
	return g.Wait()
}

// deckPaths resolves the deck of every model file, refusing two files that
// would write the same deck
func deckPaths(files []string, output, outputDir string) ([]string, error) {
	paths := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, file := range files {
		paths[i] = deckPath(file, output, outputDir)
		key := filepath.Clean(paths[i])
		if abs, err := filepath.Abs(key); err == nil {
			key = abs
		}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, file, paths[i])
		}
		seen[key] = file
	}
	return paths, nil
}

// writeFileAtomic writes through a temporary file in the target directory,
// so a failed write leaves no partial deck behind
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringP("input", "I", "", "YAML model file, see the example printed when none is given")
	writeCmd.Flags().StringP("output", "o", "", "deck file to write, - for stdout (default: model name with .inp)")
	writeCmd.Flags().String("output-dir", "", "directory receiving the decks (default: next to each model file)")
	writeCmd.Flags().Bool("crlf", false, "terminate deck lines with CRLF")
	writeCmd.Flags().IntP("jobs", "j", 4, "model files converted at once")
	for _, name := range []string{"output-dir", "crlf", "jobs"} {
		_ = viper.BindPFlag(name, writeCmd.Flags().Lookup(name))
	}
}
