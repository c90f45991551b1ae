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

// Package togloss implements the English-to-gloss transduction
// pipeline: sentence classification, slot extraction from a dependency
// parse and rendering of the slots in sign order.
package togloss

import (
	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/frame"
	"github.com/czcorpus/islgloss/lexicon"
)

// Classify determines the sentence type from the annotated sentence.
// A trailing question mark makes the sentence a question (wh-question
// if any interrogative word occurs anywhere in it); an imperative
// requires a base-form verbal root without a leading subject.
func Classify(s *annot.Sentence, lx *lexicon.Lexicon) frame.SentenceType {
	if s.Len() == 0 {
		return frame.Declarative
	}
	if s.At(s.Len() - 1).Text == "?" {
		for i := 0; i < s.Len(); i++ {
			tok := s.At(i)
			if tok.IsInterrogative() || lx.IsWhWord(tok.Text) {
				return frame.WhQuestion
			}
		}
		return frame.YesNoQuestion
	}
	root := s.Root()
	if root == nil {
		return frame.Declarative
	}
	first := s.At(0)
	if root.UPos == "VERB" && root.IsBaseVerb() &&
		(first.Dep != "nsubj" || first.Lower() == "please") {
		if first.UPos == "VERB" ||
			(s.Len() > 1 && first.Lower() == "please" && s.At(1).UPos == "VERB") {
			return frame.Imperative
		}
	}
	return frame.Declarative
}
