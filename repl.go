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
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/czcorpus/islgloss/lexicon"
	"github.com/czcorpus/islgloss/translator"
	"github.com/urfave/cli/v2"
)

type replDirection int

const (
	directionAuto replDirection = iota
	directionToGloss
	directionToEnglish
)

func (d replDirection) String() string {
	switch d {
	case directionToGloss:
		return "gloss"
	case directionToEnglish:
		return "english"
	}
	return "auto"
}

// hasLowercase decides the translation direction in auto mode: glosses
// are all-caps, so any lowercase letter means English input.
func hasLowercase(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= 'a' && r <= 'z'
	})
}

func replSuggestions() []prompt.Suggest {
	ans := []prompt.Suggest{
		{Text: ":gloss", Description: "translate English to glosses"},
		{Text: ":english", Description: "translate glosses to English"},
		{Text: ":auto", Description: "guess the direction from the input"},
		{Text: "quit", Description: "leave the console"},
	}
	for _, w := range lexicon.Adjectives() {
		ans = append(ans, prompt.Suggest{Text: w, Description: "adjective gloss"})
	}
	for _, w := range lexicon.SpecialVerbs() {
		ans = append(ans, prompt.Suggest{Text: w, Description: "verb gloss"})
	}
	for _, w := range lexicon.PlaceNouns() {
		ans = append(ans, prompt.Suggest{Text: w, Description: "place gloss"})
	}
	return ans
}

func replCompleter(suggestions []prompt.Suggest) prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) < 2 {
			return nil
		}
		return prompt.FilterHasPrefix(suggestions, word, true)
	}
}

func replAction(ctx *cli.Context) error {
	conf, err := loadConf(ctx)
	if err != nil {
		return err
	}
	tr, closeFn, err := buildTranslator(conf)
	if err != nil {
		return err
	}
	defer closeFn()

	fmt.Println("islgloss console - type a sentence or a gloss, 'quit' to leave")
	fmt.Println("direction: auto (switch with :gloss / :english / :auto)")

	direction := directionAuto
	history := []string{}
	completer := replCompleter(replSuggestions())

	for {
		in := prompt.Input("> ", completer,
			prompt.OptionTitle("islgloss console"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)
		in = strings.TrimSpace(in)
		switch in {
		case "":
			continue
		case "quit", "exit":
			return nil
		case ":gloss":
			direction = directionToGloss
			fmt.Println("direction set to: " + direction.String())
			continue
		case ":english":
			direction = directionToEnglish
			fmt.Println("direction set to: " + direction.String())
			continue
		case ":auto":
			direction = directionAuto
			fmt.Println("direction set to: " + direction.String())
			continue
		}
		history = append(history, in)
		fmt.Println(replTranslate(tr, direction, in))
	}
}

func replTranslate(tr *translator.Translator, direction replDirection, in string) string {
	switch direction {
	case directionToGloss:
		return tr.ToGloss(in)
	case directionToEnglish:
		return tr.ToEnglish(in)
	}
	if hasLowercase(in) {
		return tr.ToGloss(in)
	}
	return tr.ToEnglish(in)
}
