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
	"io/ioutil"
	"log"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gridglue/mesh"
	"github.com/notargets/gridglue/nmf"
	"github.com/notargets/gridglue/plot3d"
)

// ModelConvert holds the resolved settings for one invocation of the
// convert command, populated from flags and, when --convertConfig names
// a file, from that YAML file's profile/perf/preview values.
type ModelConvert struct {
	NMFFile    string
	Plot3DFile string
	OutFile    string
	Profile    bool
	Perf       bool
	Preview    bool
}

// ConvertConfig is the YAML config file shape convert.go reads defaults
// from, per the config surface fixed in the conversion's CLI design.
// BCAliases is parsed but not applied: applyConvertConfig uses only
// Profile, Perf and Preview.
type ConvertConfig struct {
	Profile   bool              `json:"profile"`
	Perf      bool              `json:"perf"`
	Preview   bool              `json:"preview"`
	BCAliases map[string]string `json:"bcAliases"`
}

func (c *ConvertConfig) Parse(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// ConvertCmd represents the convert command.
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Resolve an NMF connectivity file and assemble an unstructured mesh",
	Long: `
Parses a Neutral Map File, resolves its ONE_TO_ONE interfaces and
boundary conditions, assigns global ids, reads PLOT3D node coordinates,
and writes the resulting unstructured mesh as a legacy ASCII VTK file.

gridglue convert --nmf grid.nmf --plot3d grid.p3d --out mesh.vtk`,
	Run: func(cmd *cobra.Command, args []string) {
		mc := &ModelConvert{}
		mc.NMFFile, _ = cmd.Flags().GetString("nmf")
		mc.Plot3DFile, _ = cmd.Flags().GetString("plot3d")
		mc.OutFile, _ = cmd.Flags().GetString("out")
		mc.Profile, _ = cmd.Flags().GetBool("profile")
		mc.Perf, _ = cmd.Flags().GetBool("perf")
		mc.Preview, _ = cmd.Flags().GetBool("preview")

		if cfgPath, _ := cmd.Flags().GetString("convertConfig"); cfgPath != "" {
			applyConvertConfig(mc, cfgPath)
		}

		if err := RunConvert(mc); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func applyConvertConfig(mc *ModelConvert, path string) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Printf("convert: unable to read config %s: %v", path, err)
		return
	}
	cfg := &ConvertConfig{}
	if err := cfg.Parse(data); err != nil {
		log.Printf("convert: unable to parse config %s: %v", path, err)
		return
	}
	mc.Profile = mc.Profile || cfg.Profile
	mc.Perf = mc.Perf || cfg.Perf
	mc.Preview = mc.Preview || cfg.Preview
}

// RunConvert drives one conversion end to end: parse, resolve, number,
// read coordinates, assemble, write.
func RunConvert(mc *ModelConvert) error {
	if mc.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	model, err := nmf.ParseFile(mc.NMFFile)
	if err != nil {
		return err
	}
	log.Printf("convert: parsed %d blocks, %d connectivity entries", len(model.Blocks), len(model.Entries))

	conv := mesh.NewConversion(model)

	var counters *perfCounters
	if mc.Perf {
		counters, err = startPerfCounters()
		if err != nil {
			log.Printf("convert: %v", err)
		}
	}

	if err := conv.Resolve(); err != nil {
		return err
	}
	conv.Number()

	if counters != nil {
		counters.stopAndReport("convert: resolve+number")
	}

	log.Printf("convert: numbered %d nodes, %d cells, %d faces",
		conv.Numbering.NumNodes, conv.Numbering.NumCells, conv.Numbering.NumFaces)

	coords, err := plot3d.ReadFile(mc.Plot3DFile, model.Blocks)
	if err != nil {
		return err
	}

	if err := conv.Assemble(coords); err != nil {
		return err
	}

	if err := conv.Mesh.WriteVTKFile(mc.OutFile); err != nil {
		return err
	}
	log.Printf("convert: wrote %s", mc.OutFile)

	if mc.Preview {
		previewMesh(conv.Mesh)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().StringP("nmf", "n", "", "path to the Neutral Map File describing block connectivity")
	ConvertCmd.Flags().StringP("plot3d", "p", "", "path to the ASCII multi-block PLOT3D grid file")
	ConvertCmd.Flags().StringP("out", "o", "mesh.vtk", "path to write the assembled mesh, as legacy ASCII VTK")
	ConvertCmd.Flags().Bool("profile", false, "wrap the conversion in a CPU profile")
	ConvertCmd.Flags().Bool("perf", false, "report instruction/cycle counts for the resolve+number phases (linux only)")
	ConvertCmd.Flags().Bool("preview", false, "render a wireframe preview of the assembled mesh's boundary")
	ConvertCmd.Flags().String("convertConfig", "", "YAML file supplying defaults for --profile/--perf/--preview")
}
