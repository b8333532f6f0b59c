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
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/ytali/internal/chunker"
	"github.com/valpere/ytali/internal/config"
	"github.com/valpere/ytali/internal/detector"
	"github.com/valpere/ytali/internal/editor"
	"github.com/valpere/ytali/internal/orchestrator"
	"github.com/valpere/ytali/internal/report"
	"github.com/valpere/ytali/internal/translator"
)

var (
	inputText    string
	inputFile    string
	outputFile   string
	outputFormat string

	runMode     string
	openAIKey   string
	geminiKey   string
	openAIModel string
	geminiModel string
	openAIURL   string
	geminiURL   string
	chunkChars  int
	maxChunks   int
	skipEdit    bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate Italian to English or English to Italian",
	Long: `Translate a text between Italian and English. The direction is detected
from the text itself.

Run modes:
  - compare   Gemini and OpenAI, one after the other (default)
  - gemini    Gemini only
  - openai    OpenAI only

API keys are read from --openai-key/--gemini-key, OPENAI_API_KEY/GEMINI_API_KEY
(or the YTALI_ prefixed names), the config file or the .env file.

Every provider returns a literal translation with translator notes and a
neutral one. Both are copyedited afterwards unless --no-edit is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile != "-" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		format, err := report.ParseFormat(outputFormat)
		if err != nil {
			return err
		}

		text, err := readInput(inputText, inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		logger := newLogger(os.Stderr, settings.Debug)

		chunks := chunker.Chunk(text, settings.ChunkChars)
		if settings.ChunkChars > 0 {
			fmt.Fprintf(os.Stderr, "Split input into %d chunks\n", len(chunks))
		}

		dispatcher := translator.NewDefaultDispatcher(settings.OpenAIBaseURL, settings.GeminiBaseURL)
		orch := orchestrator.New(dispatcher, detector.New(), logger)

		progress := orchestrator.ProgressFunc(func(percent int, label string) {
			fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, label)
		})

		results, err := orch.Run(ctx, settings, chunks, progress)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Detected %s, translating %s\n", results.Meta.DetectedLanguage, results.Meta.Direction)

		var ed editor.Editor
		if !settings.SkipEdit {
			if model, ok := settings.EditorModel(); ok {
				ed = editor.NewLLMEditor(dispatcher, model)
				fmt.Fprintf(os.Stderr, "Copyediting with %s...\n", model.Badge())
			}
		}
		out := editor.NewAssembler(ed, logger).Finalize(ctx, results)

		var buf bytes.Buffer
		if err := report.Render(&buf, out, format, report.Options{Debug: settings.Debug}); err != nil {
			return err
		}
		if err := writeOutput(cmd.OutOrStdout(), outputFile, buf.Bytes()); err != nil {
			return err
		}

		if outputFile != "" {
			fmt.Fprintf(os.Stderr, "Successfully translated %s (%s)\n", results.Meta.Direction, settings.Mode.Label())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&inputText, "text", "", "Text to translate (wins over --input)")
	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate, - for stdin")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (stdout when empty)")
	translateCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, markdown, html or json")

	translateCmd.Flags().StringVarP(&runMode, "mode", "m", string(config.ModeCompare), "Run mode: compare, gemini or openai")
	translateCmd.Flags().StringVar(&openAIKey, "openai-key", "", "OpenAI API key")
	translateCmd.Flags().StringVar(&geminiKey, "gemini-key", "", "Gemini API key")
	translateCmd.Flags().StringVar(&openAIModel, "openai-model", config.DefaultOpenAIModel, "OpenAI model id")
	translateCmd.Flags().StringVar(&geminiModel, "gemini-model", config.DefaultGeminiModel, "Gemini model id")
	translateCmd.Flags().StringVar(&openAIURL, "openai-base-url", "", "OpenAI API base URL override")
	translateCmd.Flags().StringVar(&geminiURL, "gemini-base-url", "", "Gemini API base URL override")

	translateCmd.Flags().IntVar(&chunkChars, "chunk-chars", 0, fmt.Sprintf("Split input into chunks of this many characters on paragraph boundaries (0 = whole text, suggested %d)", chunker.DefaultMaxChars))
	translateCmd.Flags().IntVar(&maxChunks, "max-chunks", 0, "Translate at most this many chunks (0 = all)")
	translateCmd.Flags().BoolVar(&skipEdit, "no-edit", false, "Skip the copyediting and title pass")
}
