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
	"fmt"
	"strings"

	"github.com/czcorpus/islgloss/lexicon"
)

// Fallback produces a best-effort rendering for glosses the regular
// pipeline could not handle. One-sign commands and two-sign
// subject+predicate shapes still translate; anything longer yields an
// explicit untranslatable marker.
func Fallback(gloss string, lx *lexicon.Lexicon, inf Inflector) string {
	parts := strings.Fields(gloss)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		if isImperativeVerb(parts[0]) {
			return titleWord(parts[0]) + "."
		}
		return "It is " + strings.ToLower(parts[0]) + "."
	case 2:
		subject, predicate := parts[0], parts[1]
		if lx.IsAdjective(predicate) {
			return fmt.Sprintf("%s %s %s.",
				titleWord(subject), beFormFor(subject), strings.ToLower(predicate))
		}
		verb := strings.ToLower(predicate)
		switch strings.ToLower(subject) {
		case "i":
			return fmt.Sprintf("I %s.", verb)
		case "he", "she", "it":
			return fmt.Sprintf("%s %s.", titleWord(subject), inf.Inflect(verb, Present, Singular))
		default:
			return fmt.Sprintf("%s %s.", titleWord(subject), verb)
		}
	}
	return fmt.Sprintf("Unable to translate: %s", gloss)
}
