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

package lexicon

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/islgloss/db"
	"github.com/czcorpus/islgloss/fs"
	"github.com/rs/zerolog/log"
)

//go:embed data/*.txt data/*.json
var embeddedData embed.FS

// Paths configures optional external replacements for the embedded
// resources. An empty path means "use the embedded default"; a
// configured but missing file is reported and the respective list
// stays empty so that a misconfiguration cannot silently fall back
// to stale defaults.
type Paths struct {
	TimeWords   string `json:"timeWords"`
	WhWords     string `json:"whWords"`
	ToGloss     string `json:"toGloss"`
	ToEnglish   string `json:"toEnglish"`
	Corrections string `json:"corrections"`
	MWEs        string `json:"mwes"`
}

func embeddedWordList(name string) []string {
	raw, err := embeddedData.ReadFile("data/" + name)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon resource %s: %s", name, err))
	}
	var ans []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ans = append(ans, line)
	}
	return ans
}

func embeddedJSON(name string, target any) {
	raw, err := embeddedData.ReadFile("data/" + name)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon resource %s: %s", name, err))
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		panic(fmt.Sprintf("embedded lexicon resource %s: %s", name, err))
	}
}

func embeddedOverrides(name string) *OverrideTable {
	var entries []Entry
	embeddedJSON(name, &entries)
	tbl := NewOverrideTable()
	for _, e := range entries {
		tbl.Add(e.Input, e.Output)
	}
	return tbl
}

// Default builds a lexicon from the embedded resources only.
func Default() *Lexicon {
	lx := &Lexicon{
		TimeWords: embeddedWordList("time_words.txt"),
		WhWords:   embeddedWordList("wh_words.txt"),
		ToGloss:   embeddedOverrides("to_gloss_overrides.json"),
		ToEnglish: embeddedOverrides("to_english_overrides.json"),
	}
	embeddedJSON("gloss_corrections.json", &lx.Corrections)
	embeddedJSON("mwe.json", &lx.MWEs)
	return lx
}

func loadWordList(path, name string, dflt func() []string) []string {
	if path == "" {
		return dflt()
	}
	ans, err := fs.ReadWordList(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Str("list", name).
			Msg("failed to load configured word list, the list will be empty")
		return []string{}
	}
	return ans
}

func loadOverrides(path, name string, dflt func() *OverrideTable) *OverrideTable {
	if path == "" {
		return dflt()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Str("table", name).
			Msg("failed to load configured override table, the table will be empty")
		return NewOverrideTable()
	}
	var entries []Entry
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		log.Warn().Err(err).Str("path", path).Str("table", name).
			Msg("failed to parse configured override table, the table will be empty")
		return NewOverrideTable()
	}
	tbl := NewOverrideTable()
	for _, e := range entries {
		tbl.Add(e.Input, e.Output)
	}
	return tbl
}

// Load builds a lexicon from the embedded defaults, optional file
// replacements and an optional database backend. The database, when
// configured, supplements (never replaces) whatever the files and
// defaults provided.
func Load(paths Paths, dbReader db.Reader) *Lexicon {
	lx := &Lexicon{
		TimeWords: loadWordList(paths.TimeWords, "timeWords", func() []string { return embeddedWordList("time_words.txt") }),
		WhWords:   loadWordList(paths.WhWords, "whWords", func() []string { return embeddedWordList("wh_words.txt") }),
		ToGloss:   loadOverrides(paths.ToGloss, "toGloss", func() *OverrideTable { return embeddedOverrides("to_gloss_overrides.json") }),
		ToEnglish: loadOverrides(paths.ToEnglish, "toEnglish", func() *OverrideTable { return embeddedOverrides("to_english_overrides.json") }),
	}
	if paths.Corrections != "" {
		raw, err := os.ReadFile(paths.Corrections)
		if err != nil {
			log.Warn().Err(err).Str("path", paths.Corrections).
				Msg("failed to load configured corrections, the list will be empty")

		} else if err := sonic.Unmarshal(raw, &lx.Corrections); err != nil {
			log.Warn().Err(err).Str("path", paths.Corrections).
				Msg("failed to parse configured corrections, the list will be empty")
			lx.Corrections = nil
		}

	} else {
		embeddedJSON("gloss_corrections.json", &lx.Corrections)
	}
	if paths.MWEs != "" {
		raw, err := os.ReadFile(paths.MWEs)
		if err != nil {
			log.Warn().Err(err).Str("path", paths.MWEs).
				Msg("failed to load configured MWE list, the list will be empty")

		} else if err := sonic.Unmarshal(raw, &lx.MWEs); err != nil {
			log.Warn().Err(err).Str("path", paths.MWEs).
				Msg("failed to parse configured MWE list, the list will be empty")
			lx.MWEs = nil
		}

	} else {
		embeddedJSON("mwe.json", &lx.MWEs)
	}
	if dbReader != nil {
		if err := lx.supplementFromDB(dbReader); err != nil {
			log.Warn().Err(err).Msg("failed to supplement lexicon from database")
		}
	}
	log.Info().
		Int("timeWords", len(lx.TimeWords)).
		Int("whWords", len(lx.WhWords)).
		Int("toGlossOverrides", lx.ToGloss.Size()).
		Int("toEnglishOverrides", lx.ToEnglish.Size()).
		Int("corrections", len(lx.Corrections)).
		Int("mwes", len(lx.MWEs)).
		Msg("lexicon loaded")
	return lx
}

func (lx *Lexicon) supplementFromDB(rd db.Reader) error {
	words, err := rd.LoadCategory("time_word")
	if err != nil {
		return err
	}
	for _, w := range words {
		if !lx.IsTimeWord(w) {
			lx.TimeWords = append(lx.TimeWords, strings.ToLower(w))
		}
	}
	words, err = rd.LoadCategory("wh_word")
	if err != nil {
		return err
	}
	for _, w := range words {
		if !lx.IsWhWord(w) {
			lx.WhWords = append(lx.WhWords, strings.ToLower(w))
		}
	}
	pairs, err := rd.LoadPhrases("to_gloss")
	if err != nil {
		return err
	}
	for _, p := range pairs {
		lx.ToGloss.Add(p.Source, p.Target)
	}
	pairs, err = rd.LoadPhrases("to_english")
	if err != nil {
		return err
	}
	for _, p := range pairs {
		lx.ToEnglish.Add(p.Source, p.Target)
	}
	pairs, err = rd.LoadPhrases("mwe")
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if _, ok := lx.MWETarget(p.Source); !ok {
			lx.MWEs = append(lx.MWEs, MWE{Source: p.Source, Target: p.Target})
		}
	}
	return nil
}
