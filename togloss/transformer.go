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

// FingerSpell renders a proper name letter by letter, the way a name
// without an established sign is produced.
func FingerSpell(word string) string {
	up := strings.ToUpper(word)
	parts := make([]string, 0, len(up))
	for _, r := range up {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}

func tokenGloss(tok *annot.Token) string {
	if tok == nil {
		return ""
	}
	return strings.ToUpper(tok.Text)
}

func lemmaGloss(tok *annot.Token) string {
	if tok == nil {
		return ""
	}
	if tok.Lemma != "" {
		return strings.ToUpper(tok.Lemma)
	}
	return strings.ToUpper(tok.Text)
}

// Transform renders the extracted components in sign order. The output
// is a raw gloss string which still needs a Generate pass.
func Transform(sentType frame.SentenceType, comps *Components, s *annot.Sentence, lx *lexicon.Lexicon) string {
	subject := tokenGloss(comps.Subject)
	timeExp := tokenGloss(comps.TimeExp)
	object := tokenGloss(comps.Object)
	prepObject := tokenGloss(comps.PrepObject)
	modal := tokenGloss(comps.Modal)
	complement := tokenGloss(comps.Complement)
	possessive := strings.ToUpper(comps.Possessive)

	if subject == "" {
		for i := 0; i < s.Len(); i++ {
			tok := s.At(i)
			if tok.UPos == "PRON" && tok.Lower() == "i" {
				subject = strings.ToUpper(tok.Text)
				break
			}
		}
	}

	var verb string
	if comps.Verb != nil && comps.Kind != frame.KindWantNeed {
		switch {
		case comps.Kind == frame.KindCopula && comps.Complement != nil && comps.Complement.UPos == "PROPN":
			verb = tokenGloss(comps.Complement)
		case comps.Verb.UPos == "PROPN":
			verb = FingerSpell(comps.Verb.Text)
		default:
			verb = lemmaGloss(comps.Verb)
		}
	}

	politeness := ""
	if s.ContainsWord("please") {
		politeness = " PLEASE"
	}

	switch sentType {
	case frame.Declarative:
		var baseGloss string
		switch comps.Kind {
		case frame.KindFeel:
			comp := strings.TrimSpace(strings.ReplaceAll(complement, "FEEL", ""))
			if comp == "THIRSTY" {
				baseGloss = timeExp + " " + subject + " " + comp

			} else {
				baseGloss = timeExp + " " + subject + " " + comp + " FEEL"
			}
			if comps.Negation {
				baseGloss += " NOT"
			}
		case frame.KindWantNeed:
			mainVerb := lemmaGloss(comps.OriginalVerb)
			infinitive := tokenGloss(comps.SecondaryVerb)
			if prepObject != "" {
				baseGloss = timeExp + " " + subject + " " + prepObject + " " + infinitive + " " + mainVerb

			} else {
				baseGloss = timeExp + " " + subject + " " + mainVerb + " " + infinitive
			}
		case frame.KindCopula:
			if subject == "IT" {
				baseGloss = verb

			} else {
				baseGloss = timeExp + " " + subject + " " + verb
			}
			if comps.Negation {
				baseGloss += " NOT"
			}
		default:
			if object != "" {
				baseGloss = timeExp + " " + subject + " " + object + " " + verb

			} else if prepObject != "" {
				baseGloss = timeExp + " " + subject + " " + prepObject + " " + verb

			} else {
				baseGloss = timeExp + " " + subject + " " + verb
			}
			if comps.Negation {
				baseGloss += " NOT"
			}
		}
		if s.ContainsWord("stranger") && s.ContainsWord("house") {
			baseGloss = "STRANGER HOUSE IN, " + strings.TrimSpace(baseGloss)
		}
		return squeeze(baseGloss)

	case frame.YesNoQuestion:
		var gloss string
		if comps.Kind == frame.KindPhrasal && prepObject != "" {
			gloss = subject + " " + prepObject + " " + tokenGloss(comps.Particle)
			if modal != "" {
				gloss += " " + modal
			}
			gloss += "?"

		} else if comps.Modal != nil {
			gloss = subject + " " + verb + " " + object + " " + prepObject + " " + modal + "?"

		} else {
			gloss = subject + " " + verb + "?"
		}
		return squeeze(gloss)

	case frame.WhQuestion:
		whWord := ""
		for i := 0; i < s.Len(); i++ {
			if lx.IsWhWord(s.At(i).Text) {
				whWord = strings.ToUpper(s.At(i).Text)
				break
			}
		}
		var base string
		if possessive != "" {
			base = possessive + " " + whWord

		} else if comps.Kind == frame.KindFeel {
			base = subject + " " + complement + " FEEL " + whWord

		} else {
			base = strings.ReplaceAll(subject+" "+verb+" "+whWord, " BE", "")
		}
		return squeeze(base + "?")

	case frame.Imperative:
		subjectPart := possessive
		objPart := object
		if possessive != "" {
			objPart = ""

		} else {
			subjectPart = subject
		}
		// "sit down" keeps only the verb sign
		if objPart == "DOWN" {
			objPart = ""
		}
		return squeeze(subjectPart + " " + verb + " " + objPart + politeness)
	}
	return ""
}

func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
