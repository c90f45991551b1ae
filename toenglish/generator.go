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

package toenglish

import (
	"strings"

	"github.com/czcorpus/islgloss/frame"
	"github.com/czcorpus/islgloss/lexicon"
)

// infinitive fixes for want-constructions assembled from bare slots
var wantFixes = [][2]string{
	{"want eat", "want to eat"},
	{"want sleep", "want to sleep"},
	{"want sit", "want to sit"},
	{"want stand", "want to stand"},
	{"want rest", "want to rest"},
	{"went a school", "went to school"},
	{"went to a school", "went to school"},
}

// Generate joins the transformed tokens into a final sentence:
// terminal punctuation by sentence type, initial capitalization and a
// couple of surface fixes.
func Generate(tokens []string, sentType frame.SentenceType) string {
	raw := strings.Join(tokens, " ")
	raw = strings.Join(strings.Fields(raw), " ")
	if raw == "" {
		return ""
	}
	for _, fix := range wantFixes {
		raw = strings.ReplaceAll(raw, fix[0], fix[1])
	}
	if sentType.IsQuestion() {
		raw += "?"

	} else {
		raw += "."
	}
	raw = strings.ReplaceAll(raw, " i ", " I ")
	return strings.ToUpper(raw[:1]) + raw[1:]
}

// FromGloss runs the whole pipeline on a single normalized gloss
// sentence: structural patterns first, then extraction and rendering.
func FromGloss(gloss string, lx *lexicon.Lexicon, inf Inflector) string {
	if ans, ok := MatchPattern(gloss, lx, inf); ok {
		return ans
	}
	sentType := DetectSentenceType(gloss, lx)
	comps := Extract(gloss, sentType, lx)
	return Generate(Transform(comps, sentType, lx, inf), sentType)
}
