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

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/api"
	"github.com/czcorpus/islgloss/batch"
	"github.com/czcorpus/islgloss/cnf"
	"github.com/czcorpus/islgloss/db"
	"github.com/czcorpus/islgloss/db/factory"
	"github.com/czcorpus/islgloss/lexicon"
	"github.com/czcorpus/islgloss/translator"
	"github.com/czcorpus/islgloss/validation"
	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// buildTranslator assembles a translator from the configuration:
// lexicon (embedded defaults + files + optional database), optional
// annotator service client. The returned function releases the
// database connection, if any.
func buildTranslator(conf *cnf.Conf) (*translator.Translator, func(), error) {
	var dbReader db.Reader
	closeFn := func() {}
	if conf.DB.IsConfigured() {
		rd, err := factory.NewReader(&conf.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open lexicon database: %w", err)
		}
		dbReader = rd
		closeFn = func() {
			if err := rd.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close lexicon database")
			}
		}
	}
	lx := lexicon.Load(conf.Lexicon, dbReader)
	var ann annot.Annotator
	if conf.HasConfiguredAnnotator() {
		ann = annot.NewServiceAnnotator(conf.AnnotatorURL)

	} else {
		log.Warn().Msg(
			"no annotator service configured, the English-to-gloss direction " +
				"is limited to known phrases")
	}
	return translator.New(lx, ann, nil), closeFn, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func translateAction(ctx *cli.Context) error {
	conf, err := loadConf(ctx)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("nothing to translate")
	}
	tr, closeFn, err := buildTranslator(conf)
	if err != nil {
		return err
	}
	defer closeFn()
	if ctx.Bool("to-english") {
		fmt.Println(tr.ToEnglish(text))

	} else {
		fmt.Println(tr.ToGloss(text))
	}
	return nil
}

func serveAction(ctx *cli.Context) error {
	conf, err := loadConf(ctx)
	if err != nil {
		return err
	}
	tr, closeFn, err := buildTranslator(conf)
	if err != nil {
		return err
	}
	defer closeFn()
	sigCtx, stop := signalContext()
	defer stop()
	return api.Serve(sigCtx, conf.Server, tr)
}

func batchAction(ctx *cli.Context) error {
	conf, err := loadConf(ctx)
	if err != nil {
		return err
	}
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("no vertical files provided")
	}
	files, err := batch.ResolveFiles(ctx.Args().Slice())
	if err != nil {
		return err
	}
	tr, closeFn, err := buildTranslator(conf)
	if err != nil {
		return err
	}
	defer closeFn()

	out := os.Stdout
	showProgress := false
	if outPath := ctx.String("out"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
		showProgress = true
	}
	w := bufio.NewWriter(out)

	sigCtx, stop := signalContext()
	defer stop()

	var bar *uiprogress.Bar
	currFile := ""
	numSent := 0
	if showProgress {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(files))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("%s (%d sentences)", filepath.Base(currFile), numSent)
		})
	}

	statusChan := batch.TranslateFiles(
		sigCtx, conf.Vertical, tr, files,
		func(res batch.Result) error {
			_, err := fmt.Fprintf(w, "%s\t%s\n", res.Gloss, res.Text)
			return err
		},
	)
	var procErr error
	for upd := range statusChan {
		if upd.Error != nil {
			procErr = upd.Error
		}
		if upd.File != currFile {
			if currFile != "" && bar != nil {
				bar.Incr()
			}
			currFile = upd.File
		}
		numSent = upd.ProcessedSentences
	}
	if bar != nil {
		bar.Incr()
		uiprogress.Stop()
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return procErr
}

func validateAction(ctx *cli.Context) error {
	conf, err := loadConf(ctx)
	if err != nil {
		return err
	}
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("no vertical files provided")
	}
	files, err := batch.ResolveFiles(ctx.Args().Slice())
	if err != nil {
		return err
	}
	sigCtx, stop := signalContext()
	defer stop()

	numInvalid := 0
	for _, rep := range validation.ValidateFiles(sigCtx, conf.Vertical, files, 0) {
		if rep.IsValid() {
			fmt.Printf("%s: OK (%d sentences, %d tokens)\n",
				rep.File, rep.NumSentences, rep.NumTokens)

		} else {
			numInvalid++
			fmt.Printf("%s: %d problem(s)\n", rep.File, len(rep.Errors))
			for _, e := range rep.Errors {
				fmt.Printf("  %s\n", e)
			}
		}
	}
	if numInvalid > 0 {
		return fmt.Errorf("%d file(s) failed validation", numInvalid)
	}
	return nil
}

func templateAction(ctx *cli.Context) error {
	conf := cnf.Default()
	conf.AnnotatorURL = "http://localhost:8001/annotate"
	conf.DB = db.Conf{Type: "sqlite", Path: "/var/opt/islgloss/lexicon.db"}
	conf.Server.AllowedOrigins = []string{"http://localhost:3000"}
	conf.LogLevel = "info"
	ans, err := sonic.ConfigDefault.MarshalIndent(conf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to dump a configuration template: %w", err)
	}
	fmt.Println(string(ans))
	return nil
}
