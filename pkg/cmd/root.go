// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "convert [flags] rom_file(s)",
	Short: "Convert a binary ROM into a Jack class which loads it.",
	Long: `Convert a binary ROM into Jack source code.  The generated class provides a
function which stores each byte of the ROM into a given array, starting from
address 512 (where CHIP-8 programs are loaded).  With --batch, each ROM
given is converted into its own class.`,
	// Every argument is a ROM file, there are no subcommands.
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("convert ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else if GetFlag(cmd, "batch") {
			runBatchCmd(cmd, args)
		} else {
			runConvertCmd(cmd, args)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Configure logging for the given command.  Colours are only used when logging
// to a terminal.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !term.IsTerminal(int(os.Stderr.Fd())),
		DisableTimestamp: true,
	})
}

func init() {
	// Otherwise, a ROM named "completion" would be taken as a command.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().StringP("output", "o", "Rom.jack", "specify output file (or - for stdout).")
	rootCmd.Flags().String("class", "Rom", "specify name of generated class.")
	rootCmd.PersistentFlags().String("function", "loadRom", "specify name of generated function.")
	rootCmd.PersistentFlags().String("param", "mem", "specify name of array parameter.")
	rootCmd.PersistentFlags().Uint("base", 512, "specify address of first byte.")
	rootCmd.PersistentFlags().String("format", "jack", "specify output format (jack or go).")
	rootCmd.PersistentFlags().StringP("package", "p", "rom", "specify Go package (go format only).")
	rootCmd.PersistentFlags().Bool("strict", false, "fail when ROM does not fit in memory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
