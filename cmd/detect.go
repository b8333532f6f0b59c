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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/ytali/internal/detector"
)

var (
	detectText string
	detectFile string
	detectJSON bool
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected language and translation direction",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(detectText, detectFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		decision := detector.New().Decide(text)
		out := cmd.OutOrStdout()

		if detectJSON {
			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			return enc.Encode(struct {
				detector.Decision
				Direction string `json:"direction"`
			}{decision, decision.Direction()})
		}

		fmt.Fprintf(out, "Detected:  %s\n", decision.Detected)
		fmt.Fprintf(out, "Direction: %s\n", decision.Direction())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVar(&detectText, "text", "", "Text to inspect")
	detectCmd.Flags().StringVarP(&detectFile, "input", "i", "", "Input file, - for stdin")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Print JSON")
}
