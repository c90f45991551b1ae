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

import "strings"

// Tense of the rendered English verb, derived from the gloss time
// expression.
type Tense string

const (
	Present Tense = "present"
	Past    Tense = "past"
	Future  Tense = "future"
)

// Number is the grammatical number of the sentence subject.
type Number string

const (
	Singular Number = "singular"
	Plural   Number = "plural"
)

// Inflector conjugates an English verb lemma. A richer implementation
// may consult a morphological database; the transducer only requires
// this minimal contract.
type Inflector interface {
	Inflect(lemma string, tense Tense, number Number) string
}

// TableInflector conjugates verbs by a small irregular table plus
// regular suffix rules.
type TableInflector struct{}

var irregularPast = map[string]string{
	"go":  "went",
	"eat": "ate",
}

func (ti TableInflector) Inflect(lemma string, tense Tense, number Number) string {
	verb := strings.ToLower(lemma)
	switch tense {
	case Past:
		if past, ok := irregularPast[verb]; ok {
			return past
		}
		if strings.HasSuffix(verb, "e") {
			return verb + "d"
		}
		return verb + "ed"
	case Future:
		return "will " + verb
	default:
		if number == Singular {
			if _, irregular := irregularPast[verb]; !irregular && !strings.HasSuffix(verb, "s") {
				return verb + "s"
			}
		}
		return verb
	}
}
