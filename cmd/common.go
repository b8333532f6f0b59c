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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/valpere/ytali/internal/config"
	"github.com/valpere/ytali/internal/textnorm"
)

var errEmptyInput = errors.New("no input text: use --text or --input")

// flagKeys maps CLI flags to setting keys.
var flagKeys = map[string]string{
	"mode":            "mode",
	"openai-key":      "openai_api_key",
	"gemini-key":      "gemini_api_key",
	"openai-model":    "openai_model",
	"gemini-model":    "gemini_model",
	"openai-base-url": "openai_base_url",
	"gemini-base-url": "gemini_base_url",
	"chunk-chars":     "chunk_chars",
	"max-chunks":      "max_chunks",
	"no-edit":         "no_edit",
	"debug":           "debug",
}

// loadSettings resolves the run settings from the flags of cmd, the
// environment, the config file and the dotenv file.
func loadSettings(cmd *cobra.Command) (config.RunSettings, error) {
	v := config.NewViper()

	bind := func(fs *pflag.FlagSet) error {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
		return nil
	}
	if err := bind(cmd.Flags()); err != nil {
		return config.RunSettings{}, err
	}
	if err := bind(cmd.InheritedFlags()); err != nil {
		return config.RunSettings{}, err
	}

	return config.Load(v, config.LoadOptions{
		ConfigFile:      configFile,
		EnvFile:         envFile,
		EnvFileRequired: cmd.Flags().Changed("env-file"),
	})
}

// readInput returns the normalized input text. Pasted text wins over a file;
// "-" reads stdin.
func readInput(text, inputFile string, stdin io.Reader) (string, error) {
	var raw []byte
	switch {
	case text != "":
		raw = []byte(text)
	case inputFile == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = data
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		raw = data
	}

	normalized := textnorm.Normalize(textnorm.Decode(raw))
	if normalized == "" {
		return "", errEmptyInput
	}
	return normalized, nil
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// newLogger logs warnings and errors, everything with debug.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
