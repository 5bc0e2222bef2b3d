/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"storyvoice/internal/config"
	"storyvoice/internal/crash"
	"storyvoice/internal/dialogue"
	applog "storyvoice/internal/log"
	"storyvoice/internal/telemetry"
	"storyvoice/internal/version"
	"storyvoice/internal/voicemap"
)

func usage() {
	fmt.Println("storyvoice — dialogue segmentation and voice assignment")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  storyvoice version|-v|--version                    Show version")
	fmt.Println("  storyvoice parse <file> [--voices <map.json>] [--json]")
	fmt.Println("                                                     Parse a story text file")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Defaults()
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	defer crash.Recover("")

	args := os.Args
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("storyvoice — dialogue segmentation and voice assignment")
			fmt.Println(version.String())
			return
		case "parse":
			runParse(l, cfg, args[2:])
			return
		}
	}

	usage()
}

func runParse(l *slog.Logger, cfg config.AppConfig, args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	voicesPath := fs.String("voices", cfg.Parser.VoiceMap, "path to a voice map JSON file")
	asJSON := fs.Bool("json", false, "print the full parse result as JSON")
	_ = fs.Parse(args) // ExitOnError: flag errors terminate here
	if fs.NArg() < 1 {
		fmt.Println("parse requires <file>")
		usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	text, err := os.ReadFile(path)
	if err != nil {
		l.Error("read input failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	opts := []dialogue.Option{
		dialogue.WithDiscoveryObserver(func(m dialogue.CharacterVoiceMapping) {
			l.Info("character discovered",
				slog.String("name", m.CharacterName),
				slog.String("tag", m.SpeakerTag),
				slog.String("archetype", m.VoiceProfile.Archetype))
		}),
	}
	if *voicesPath != "" {
		vm, err := voicemap.Load(*voicesPath)
		if err != nil {
			l.Error("load voice map failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		l.Info("voice map loaded", slog.String("path", *voicesPath), slog.Int("entries", len(vm)))
		opts = append(opts, dialogue.WithVoiceMap(vm))
	}

	pc, err := dialogue.Parse(string(text), opts...)
	if err != nil {
		l.Error("parse failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if cfg.General.TelemetryOptIn {
		telemetry.Event("parse_completed", map[string]any{
			"segments":   len(pc.Segments),
			"characters": pc.TotalCharacters,
		})
	}

	if *asJSON {
		out, err := json.MarshalIndent(pc, "", "  ")
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("Segments: %d (dialogue %d, narrative %d)\n",
		len(pc.Segments), len(pc.DialogueSegments), len(pc.NarrativeSegments))
	fmt.Printf("Characters: %d\n", pc.TotalCharacters)
	for _, m := range pc.CharacterMappings {
		fmt.Printf("  %-20s %-6s %s/%s (%d lines)\n",
			m.CharacterName, m.SpeakerTag, m.VoiceProfile.Archetype, m.VoiceProfile.Tone, m.DialogueCount)
	}
	fmt.Printf("Estimated reading time: %d min\n", pc.ReadingTime)
}
