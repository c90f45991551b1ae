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

// verbal object glosses taking an infinitive after "want"
var infinitiveObjects = map[string]bool{
	"EAT": true, "SLEEP": true, "SIT": true, "STAND": true, "REST": true,
}

// mass nouns taking no article
var noArticleObjects = map[string]bool{
	"WATER": true,
}

// objects of "feel" taking no article
var bareFeelObjects = map[string]bool{
	"well": true, "good": true, "bad": true, "sick": true,
}

// mass nouns after "have" taking no article
var bareHaveObjects = map[string]bool{
	"hair": true, "money": true,
}

// Transform renders the extracted components as a sequence of English
// tokens. Inflection of the main verb is delegated to the provided
// Inflector.
func Transform(comps *Components, sentType frame.SentenceType, lx *lexicon.Lexicon, inf Inflector) []string {
	var out []string

	tense := Present
	if comps.TimeExp != "" {
		switch strings.ToLower(comps.TimeExp) {
		case "yesterday":
			tense = Past
		case "tomorrow", "future":
			tense = Future
		}
		out = append(out, titleWord(strings.ToLower(comps.TimeExp))+",")
	}

	subject := "i"
	if comps.Subject != "" {
		subject = strings.ToLower(comps.Subject)
	}
	subjectToken := subject
	if comps.ProperName != "" && comps.Subject == comps.ProperName {
		subjectToken = titleWord(comps.ProperName)
	}
	number := Singular
	switch subject {
	case "we", "they", "you all":
		number = Plural
	}

	objectToken := func() string {
		if comps.ProperName != "" && comps.Object == comps.ProperName {
			return titleWord(comps.ProperName)
		}
		return strings.ToLower(comps.Object)
	}

	switch sentType {
	case frame.Imperative:
		if comps.Politeness {
			out = append(out, "Please")
		}
		verb := strings.ToLower(comps.Verb)
		if tgt, ok := lx.MWETarget(comps.Verb); ok {
			verb = tgt
		}
		out = append(out, verb)
		if comps.Object != "" {
			out = append(out, objectToken())
		}

	case frame.YesNoQuestion:
		if comps.Modal == "CAN" {
			out = append(out, "Can", subjectToken)
			switch {
			case comps.Verb == "CALL DOCTOR":
				out = append(out, "call a doctor")
			case comps.Verb == "TAKE ME DOCTOR":
				out = append(out, "take me to a doctor")
			default:
				if tgt, ok := lx.MWETarget(comps.Verb); ok {
					out = append(out, tgt)

				} else if comps.Verb != "" {
					out = append(out, strings.ToLower(comps.Verb))
				}
				if comps.Object != "" {
					out = append(out, objectToken())
				}
			}

		} else if comps.Adjective != "" {
			aux := "Is"
			switch subject {
			case "you", "we", "they":
				aux = "Are"
			}
			out = append(out, aux, subjectToken, strings.ToLower(comps.Adjective))

		} else {
			aux := "Does"
			switch subject {
			case "you", "we", "they", "i":
				aux = "Do"
			}
			out = append(out, aux, subjectToken)
			if comps.Verb != "" {
				out = append(out, strings.ToLower(comps.Verb))
			}
			if comps.Object != "" {
				out = append(out, objectToken())
			}
		}

	case frame.WhQuestion:
		out = append(out, transformWhQuestion(comps, subjectToken, subject)...)

	default:
		out = append(out, transformDeclarative(comps, subjectToken, subject, number, tense, lx, inf)...)
	}

	if comps.Possessive != "" && len(out) > 0 &&
		(sentType == frame.Declarative || sentType == frame.Imperative) {
		poss := strings.ToLower(comps.Possessive)
		if (poss == "my" || poss == "your") && !startsWithPossessive(out[0]) {
			out[0] = poss + " " + out[0]
		}
	}
	return out
}

func transformWhQuestion(comps *Components, subjectToken, subject string) []string {
	whWord := "what"
	if comps.WhWord != "" {
		whWord = strings.ToLower(comps.WhWord)
	}
	out := []string{titleWord(whWord)}

	switch {
	case comps.Modal == "CAN":
		out = append(out, "can", subjectToken)
		if comps.Verb != "" {
			out = append(out, strings.ToLower(comps.Verb))
		}
		if comps.Object != "" {
			out = append(out, strings.ToLower(comps.Object))
		}

	case comps.Possessive != "":
		if comps.Adjective != "" || whWord == "what" {
			out = append(out, "is", "your")
			if comps.Object != "" {
				out = append(out, strings.ToLower(comps.Object))
			}

		} else {
			out = append(out, "do", "you")
			if comps.Verb != "" {
				out = append(out, strings.ToLower(comps.Verb))
			}
			if comps.Object != "" {
				out = append(out, strings.ToLower(comps.Object))
			}
		}

	case comps.Adjective != "":
		out = append(out, "do", subjectToken, "feel", strings.ToLower(comps.Adjective))

	default:
		aux := "does"
		switch subject {
		case "you", "we", "they", "i":
			aux = "do"
		}
		out = append(out, aux, subjectToken)
		if comps.Verb != "" {
			out = append(out, strings.ToLower(comps.Verb))
		}
		if comps.Object != "" {
			out = append(out, strings.ToLower(comps.Object))
		}
	}
	return out
}

func transformDeclarative(comps *Components, subjectToken, subject string, number Number, tense Tense, lx *lexicon.Lexicon, inf Inflector) []string {
	var out []string

	beForm := func() string {
		switch {
		case subject == "i":
			return "am"
		case number == Singular:
			return "is"
		default:
			return "are"
		}
	}

	switch {
	// a bare name as the whole predicate: "I FARAAN"
	case comps.ProperName != "" && comps.Subject == comps.ProperName && comps.Verb == "":
		out = append(out, titleWord(comps.ProperName), "is")
		if comps.Object != "" {
			out = append(out, strings.ToLower(comps.Object))
		}

	case comps.Verb == "WANT" && comps.SecondaryVerb != "":
		out = append(out, subjectToken, "want", "to", strings.ToLower(comps.SecondaryVerb))
		if comps.Object != "" {
			if lx.IsPlaceNoun(comps.Object) {
				out = append(out, "to", "the")
			}
			out = append(out, strings.ToLower(comps.Object))
		}

	case comps.Adjective != "":
		out = append(out, subjectToken)
		adj := strings.ToLower(comps.Adjective)
		switch comps.Adjective {
		case "DANGER":
			out = append(out, beForm(), "in danger")
		case "BIG", "SMALL":
			be := "is"
			if subject == "they" || subject == "we" {
				be = "are"
			}
			out = append(out, be, adj)
		case "RIGHT", "WRONG":
			if comps.Negation {
				out = append(out, "is", "not", adj)

			} else {
				out = append(out, "is", adj)
			}
		default:
			be := beForm()
			if comps.Negation {
				be += " not"
			}
			out = append(out, be, adj)
		}

	case comps.Verb == "FEEL":
		out = append(out, subjectToken)
		if comps.Negation {
			out = append(out, "do not")
		}
		out = append(out, "feel")
		if comps.Object != "" {
			obj := strings.ToLower(comps.Object)
			if !bareFeelObjects[obj] {
				out = append(out, "a")
			}
			out = append(out, obj)
		}

	case comps.Verb == "HAVE":
		out = append(out, subjectToken)
		if comps.Negation {
			out = append(out, "do not")
		}
		out = append(out, "have")
		if comps.Object != "" {
			obj := strings.ToLower(comps.Object)
			if !bareHaveObjects[obj] {
				out = append(out, "a")
			}
			out = append(out, obj)
		}

	case comps.Verb == "WANT" && comps.Object != "":
		out = append(out, subjectToken, "want")
		if infinitiveObjects[comps.Object] {
			out = append(out, "to", strings.ToLower(comps.Object))

		} else if comps.ProperName != "" && comps.Object == comps.ProperName {
			out = append(out, titleWord(comps.ProperName))

		} else {
			if !noArticleObjects[comps.Object] {
				out = append(out, "a")
			}
			out = append(out, strings.ToLower(comps.Object))
		}

	default:
		out = append(out, subjectToken)
		if comps.Negation {
			aux := "does not"
			switch subject {
			case "i", "you", "we", "they":
				aux = "do not"
			}
			out = append(out, aux)

		} else if comps.Modal != "" {
			out = append(out, strings.ToLower(comps.Modal))
		}
		if comps.Verb != "" {
			verb := strings.ToLower(comps.Verb)
			if tgt, ok := lx.MWETarget(comps.Verb); ok {
				verb = tgt
			}
			if !comps.Negation && comps.Modal == "" {
				head := verb
				if i := strings.Index(verb, " "); i >= 0 {
					head = verb[:i]
				}
				verb = inf.Inflect(head, tense, number)
			}
			out = append(out, verb)
		}
		if comps.Object != "" {
			if comps.ProperName != "" && comps.Object == comps.ProperName {
				out = append(out, titleWord(comps.ProperName))

			} else {
				out = append(out, strings.ToLower(comps.Object))
			}
		}
	}
	return out
}

func startsWithPossessive(tok string) bool {
	switch strings.Fields(strings.ToLower(tok))[0] {
	case "my", "your", "his", "her", "its", "our", "their":
		return true
	}
	return false
}
