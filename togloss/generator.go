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

package togloss

import (
	"strings"

	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/frame"
	"github.com/czcorpus/islgloss/lexicon"
)

// Generate finalizes a raw transformed gloss: whitespace is
// normalized and question sentences get their terminal question mark.
func Generate(gloss string, sentType frame.SentenceType) string {
	ans := squeeze(gloss)
	if ans != "" && sentType.IsQuestion() && !strings.HasSuffix(ans, "?") {
		ans += "?"
	}
	return ans
}

// FromSentence runs the whole pipeline on an annotated sentence.
func FromSentence(s *annot.Sentence, lx *lexicon.Lexicon) string {
	sentType := Classify(s, lx)
	comps := Extract(s, lx)
	return Generate(Transform(sentType, comps, s, lx), sentType)
}
