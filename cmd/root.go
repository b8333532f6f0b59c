/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

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
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configFile string
	envFile    string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "ytali",
	Short: "Italian/English translator comparing LLM providers",
	Long: `A CLI application that detects whether a text is Italian or English and
translates it into the other language with OpenAI and/or Gemini.

Every provider produces two versions: a literal translation with translator
notes and a neutral, reader-friendly one. Both are copyedited and a title is
suggested.

Use "ytali translate --help" for translation options.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file with API keys (ignored when missing)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging and run details in the report")
}
