// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Islgloss is a bidirectional translator between English sentences
// and Indian Sign Language glosses. It can translate single sentences,
// serve an HTTP API, process pre-annotated corpus verticals in batch
// mode and run an interactive console.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/czcorpus/islgloss/cnf"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func setupLog(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// loadConf loads the configuration file provided via the --conf flag
// or, when missing, falls back to the embedded defaults. The
// --log-level flag takes precedence over the configured level.
func loadConf(ctx *cli.Context) (*cnf.Conf, error) {
	var conf *cnf.Conf
	if confPath := ctx.String("conf"); confPath != "" {
		var err error
		conf, err = cnf.LoadConf(confPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}

	} else {
		conf = cnf.Default()
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if level := ctx.String("log-level"); level != "" {
		conf.LogLevel = level
	}
	setupLog(conf.LogLevel)
	return conf, nil
}

func main() {
	app := &cli.App{
		Name:    "islgloss",
		Usage:   "a bidirectional English <-> Indian Sign Language gloss translator",
		Version: fmt.Sprintf("%s (build %s, commit %s)", version, buildDate, gitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "conf",
				Aliases: []string{"c"},
				Usage:   "path to a JSON configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "logging level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "translate",
				Usage:     "translate a single sentence or gloss",
				ArgsUsage: "<text>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "to-english",
						Aliases: []string{"e"},
						Usage:   "translate a gloss to English (default is English to gloss)",
					},
				},
				Action: translateAction,
			},
			{
				Name:   "serve",
				Usage:  "run the HTTP translation service",
				Action: serveAction,
			},
			{
				Name:      "batch",
				Usage:     "translate pre-annotated corpus verticals to glosses",
				ArgsUsage: "<vertical-file-or-dir> [...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output file (default is stdout)",
					},
				},
				Action: batchAction,
			},
			{
				Name:      "validate",
				Usage:     "validate pre-annotated corpus verticals",
				ArgsUsage: "<vertical-file-or-dir> [...]",
				Action:    validateAction,
			},
			{
				Name:   "repl",
				Usage:  "run an interactive translation console",
				Action: replAction,
			},
			{
				Name:   "template",
				Usage:  "print a configuration template to stdout",
				Action: templateAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "islgloss: %v\n", err)
		os.Exit(1)
	}
}
