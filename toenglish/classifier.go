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

// Package toenglish implements the gloss-to-English transduction
// pipeline: sentence-type detection on raw gloss tokens, slot
// extraction via ordered token claims and rendering of the slots as
// an English sentence.
package toenglish

import (
	"strings"

	"github.com/czcorpus/islgloss/frame"
	"github.com/czcorpus/islgloss/lexicon"
)

// DetectSentenceType determines the sentence type of a gloss. An
// interrogative sign anywhere makes it a wh-question even without a
// question mark; a trailing CAN marks a yes-no question the same way
// a question mark does.
func DetectSentenceType(gloss string, lx *lexicon.Lexicon) frame.SentenceType {
	tokens := strings.Fields(gloss)
	for _, tok := range tokens {
		if lx.IsWhWord(strings.TrimSuffix(tok, "?")) {
			return frame.WhQuestion
		}
	}
	if strings.HasSuffix(gloss, "?") || (len(tokens) >= 2 && tokens[len(tokens)-1] == "CAN") {
		return frame.YesNoQuestion
	}
	if containsToken(tokens, "PLEASE") || (len(tokens) > 0 && isImperativeVerb(tokens[0])) {
		return frame.Imperative
	}
	return frame.Declarative
}

func containsToken(tokens []string, w string) bool {
	for _, t := range tokens {
		if t == w {
			return true
		}
	}
	return false
}

func isImperativeVerb(w string) bool {
	switch strings.ToLower(w) {
	case "go", "come", "sit", "stand", "help":
		return true
	}
	return false
}
