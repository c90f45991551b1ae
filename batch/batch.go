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

// Package batch translates whole pre-annotated corpus verticals.
// Sentences are assembled from <s> structures and fed through the
// translator without involving the annotator service.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/cnf"
	"github.com/czcorpus/islgloss/fs"
	"github.com/czcorpus/islgloss/translator"
	"github.com/rs/zerolog/log"
)

// statusReportStep defines how often (in sentences) a progress
// status is emitted for a file being processed.
const statusReportStep = 100

// Status stores basic information about vertical file processing.
type Status struct {
	Datetime           time.Time
	File               string
	ProcessedSentences int
	Error              error
}

// Result is one translated sentence of a vertical file.
type Result struct {
	File  string
	Text  string
	Gloss string
}

// ResultHandler consumes translated sentences. Returning an error
// stops the processing of the current file.
type ResultHandler func(res Result) error

func sendErrStatus(statusChan chan Status, file string, err error) {
	statusChan <- Status{
		Datetime: time.Now(),
		File:     file,
		Error:    err,
	}
}

// ResolveFiles expands the provided paths into a list of vertical
// files to process. Directories are expanded to their contents.
func ResolveFiles(paths []string) ([]string, error) {
	var ans []string
	for _, path := range paths {
		if path == "" {
			log.Warn().Msg("empty path found in list of vertical files to process, skipping")
			continue
		}
		switch {
		case fs.IsFile(path):
			ans = append(ans, path)
		case fs.IsDir(path):
			tmp, err := fs.ListFilesInDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve vertical files: %w", err)
			}
			ans = append(ans, tmp...)
		default:
			return nil, fmt.Errorf("vertical file not found: %s", path)
		}
	}
	if len(ans) == 0 {
		return nil, fmt.Errorf("no valid vertical files found to process")
	}
	return ans, nil
}

// TranslateFiles translates all the provided vertical files and feeds
// each translated sentence to onResult. The returned channel reports
// processing status including possible errors; it is closed once all
// the files are done.
func TranslateFiles(
	ctx context.Context,
	conf cnf.VerticalConf,
	tr *translator.Translator,
	files []string,
	onResult ResultHandler,
) chan Status {
	statusChan := make(chan Status, 10)
	go func() {
		defer close(statusChan)
		for _, file := range files {
			log.Info().Str("vertical", file).Msg("processing vertical")
			numProc, err := translateFile(ctx, conf, tr, file, onResult, statusChan)
			statusChan <- Status{
				Datetime:           time.Now(),
				File:               file,
				ProcessedSentences: numProc,
				Error:              err,
			}
			if err != nil {
				return
			}
		}
	}()
	return statusChan
}

func translateFile(
	ctx context.Context,
	conf cnf.VerticalConf,
	tr *translator.Translator,
	file string,
	onResult ResultHandler,
	statusChan chan Status,
) (int, error) {
	numProc := 0
	err := annot.ReadVertical(file, conf.Encoding, conf.Columns, func(s *annot.Sentence) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := Result{
			File:  file,
			Text:  s.Text(),
			Gloss: tr.GlossFromAnnotated(s),
		}
		if err := onResult(res); err != nil {
			return err
		}
		numProc++
		if numProc%statusReportStep == 0 {
			statusChan <- Status{
				Datetime:           time.Now(),
				File:               file,
				ProcessedSentences: numProc,
			}
		}
		return nil
	})
	return numProc, err
}
