// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/docmerge"
	"github.com/poiesic/docmerge/config"
	"github.com/poiesic/docmerge/core"
)

func main() {
	app := &cli.App{
		Name:  "docmerge",
		Usage: "Merge multi-format document sets into one summarized document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "merge",
				Usage:  "Merge the documents found under an input directory",
				Action: mergeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input directory; each subdirectory becomes one document set",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file name",
						Value:   "merged.md",
					},
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Summarization provider (local, openai, googleai)",
					},
					&cli.StringFlag{
						Name:  "summary",
						Usage: "Summary type (none, executive, detailed)",
						Value: "executive",
					},
					&cli.BoolFlag{
						Name:  "require-summary",
						Usage: "Fail a document set when its summary cannot be produced",
					},
					&cli.StringSliceFlag{
						Name:  "include-section",
						Usage: "Heading label to retain; repeatable, keeps everything when omitted",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of document sets processed concurrently (0 = automatic)",
					},
				},
			},
			{
				Name:   "generate",
				Usage:  "Generate free-form content from a prompt",
				Action: generateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "prompt",
						Aliases:  []string{"p"},
						Usage:    "Prompt text",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func mergeCommand(c *cli.Context) error {
	cfg := config.Load()
	if v := c.String("provider"); v != "" {
		cfg.Provider.Name = v
	}
	if v := c.Int("workers"); v > 0 {
		cfg.Pipeline.Workers = v
	}

	summaryType, err := core.ParseSummaryType(c.String("summary"))
	if err != nil {
		return err
	}

	sets, err := discoverSets(c.String("input"), summaryType, c.Bool("require-summary"), c.StringSlice("include-section"))
	if err != nil {
		return err
	}

	service, err := docmerge.New(c.Context, cfg)
	if err != nil {
		return err
	}
	defer service.Close()

	req := core.MergeRequest{
		InputDir:     c.String("input"),
		OutputFile:   c.String("output"),
		DocumentSets: sets,
	}

	result, outPath, err := service.Merge(c.Context, req)
	if err != nil {
		return err
	}

	fmt.Printf("Merged %d section(s) into %s\n", len(result.Sections), outPath)
	for name, reason := range result.Failures {
		fmt.Fprintf(os.Stderr, "failed: %s: %s\n", name, reason)
	}
	if len(result.Failures) > 0 {
		return fmt.Errorf("%d document set(s) failed", len(result.Failures))
	}
	return nil
}

func generateCommand(c *cli.Context) error {
	cfg := config.Load()

	service, err := docmerge.New(c.Context, cfg)
	if err != nil {
		return err
	}
	defer service.Close()

	content, err := service.GenerateContent(c.Context, c.String("prompt"))
	if err != nil {
		return err
	}

	fmt.Println(content)
	return nil
}

// discoverSets maps each subdirectory of the input directory to one
// document set named after it. Files with unsupported extensions are
// skipped; empty subdirectories are too.
func discoverSets(inputDir string, summaryType core.SummaryType, required bool, includeSections []string) ([]core.DocumentSet, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var sets []core.DocumentSet
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(inputDir, entry.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", dir, err)
		}

		var docs []core.SourceDocument
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			path := filepath.Join(dir, file.Name())
			doc, err := core.NewSourceDocument(path)
			if err != nil {
				slog.Debug("skipping unsupported file", "path", path)
				continue
			}
			docs = append(docs, doc)
		}
		if len(docs) == 0 {
			continue
		}
		sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })

		sets = append(sets, core.DocumentSet{
			Name:            entry.Name(),
			Documents:       docs,
			SummaryType:     summaryType,
			SummaryRequired: required,
			IncludeSections: includeSections,
		})
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no document sets found under %s", inputDir)
	}
	return sets, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
