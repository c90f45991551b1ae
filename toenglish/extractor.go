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

// Components holds the gloss tokens filling the grammatical slots of
// one sentence. An empty string means the slot is unfilled.
type Components struct {
	TimeExp       string
	Subject       string
	Object        string
	Verb          string
	SecondaryVerb string
	Adjective     string
	Modal         string
	WhWord        string
	Possessive    string
	Location      string
	ProperName    string
	Negation      bool
	Politeness    bool
}

// pronouns which must never be mistaken for a finger-spelled name
var glossPronouns = map[string]bool{
	"I": true, "YOU": true, "HE": true, "SHE": true, "IT": true,
	"WE": true, "THEY": true, "ME": true, "THIS": true, "THAT": true,
}

// Extract fills the grammatical slots from a gloss. Rules run in a
// fixed order and each token is claimed by at most one rule; the
// positional residue is assigned at the end.
func Extract(gloss string, sentType frame.SentenceType, lx *lexicon.Lexicon) *Components {
	comps := &Components{}

	// only the first sentence of a multi-sentence gloss is analyzed
	if i := strings.Index(gloss, "."); i >= 0 {
		gloss = gloss[:i]
	}
	rawTokens := strings.Fields(gloss)
	if sentType.IsQuestion() && len(rawTokens) > 0 {
		last := strings.TrimSuffix(rawTokens[len(rawTokens)-1], "?")
		if last == "" {
			rawTokens = rawTokens[:len(rawTokens)-1]

		} else {
			rawTokens[len(rawTokens)-1] = last
		}
	}
	tokens := newTokenList(rawTokens)

	if rest := tokens.Rest(); len(rest) > 0 && lx.IsTimeWord(rest[0]) {
		comps.TimeExp = rest[0]
		tokens.Claim(rest[0])
	}
	if tokens.Claim("PLEASE") {
		comps.Politeness = true
	}
	if sentType == frame.WhQuestion {
		for _, tok := range tokens.Rest() {
			if lx.IsWhWord(tok) {
				comps.WhWord = tok
				tokens.Claim(tok)
				break
			}
		}
	}
	if tokens.Claim("NOT") {
		comps.Negation = true
	}
	for _, place := range lexicon.PlaceNouns() {
		if tokens.Contains(place) {
			comps.Location = place
			break
		}
	}
	for _, tok := range tokens.Rest() {
		if lx.IsAdjective(tok) {
			comps.Adjective = tok
			tokens.Claim(tok)
			break
		}
	}
	for _, tok := range tokens.Rest() {
		if lx.IsModal(tok) {
			comps.Modal = tok
			tokens.Claim(tok)
			break
		}
	}
	for _, tok := range tokens.Rest() {
		if lx.IsPossessive(tok) {
			comps.Possessive = tok
			tokens.Claim(tok)
			break
		}
	}

	// "WANT GO <place>" keeps the destination for later assignment
	if tokens.Contains("WANT") && tokens.Contains("GO") && comps.Location != "" {
		comps.Verb = "WANT"
		comps.SecondaryVerb = "GO"
		tokens.Claim("GO")
		tokens.Claim("WANT")
	}

	if tokens.Len() >= 2 {
		if tokens.Contains("CALL") && tokens.Contains("DOCTOR") &&
			absInt(tokens.Pos("CALL")-tokens.Pos("DOCTOR")) == 1 {
			comps.Verb = "CALL DOCTOR"
			tokens.Claim("CALL")
			tokens.Claim("DOCTOR")

		} else if tokens.Contains("TAKE") && tokens.Contains("DOCTOR") && tokens.Contains("ME") {
			comps.Verb = "TAKE ME DOCTOR"
			tokens.Claim("ME")
			tokens.Claim("TAKE")
			tokens.Claim("DOCTOR")
		}
	}

	for _, mwe := range lx.MWEs {
		parts := strings.Fields(mwe.Source)
		if len(parts) == 2 && tokens.ClaimPair(parts[0], parts[1]) {
			comps.Verb = mwe.Source
			break
		}
	}

	for _, sv := range lexicon.SpecialVerbs() {
		if tokens.Contains(sv) {
			if comps.Verb == "" {
				comps.Verb = sv

			} else {
				comps.SecondaryVerb = sv
			}
			tokens.Claim(sv)
			break
		}
	}

	// a residual sign with no other reading may be a finger-spelled
	// name; pronouns claim their position but are never names
	for _, tok := range tokens.Rest() {
		if lx.IsAdjective(tok) || lx.IsSpecialVerb(tok) ||
			lx.IsModal(tok) || lx.IsPlaceNoun(tok) || !isNameLike(tok) {
			continue
		}
		if comps.Subject == "" && tokens.Pos(tok) == 0 {
			comps.Subject = tok
			if !glossPronouns[tok] {
				comps.ProperName = tok
			}
			tokens.Claim(tok)
			break

		} else if comps.Object == "" {
			comps.Object = tok
			if !glossPronouns[tok] {
				comps.ProperName = tok
			}
			tokens.Claim(tok)
			break
		}
	}

	if comps.Location != "" && tokens.Contains(comps.Location) {
		if comps.Object == "" {
			comps.Object = comps.Location
		}
		tokens.Claim(comps.Location)
	}

	if sentType == frame.Imperative {
		if comps.Verb == "" {
			if v, ok := tokens.ClaimFirst(); ok {
				comps.Verb = v
			}
		}
		if rest := tokens.ClaimAll(); len(rest) > 0 {
			comps.Object = strings.Join(rest, " ")
		}

	} else {
		if tokens.Contains("GO") && tokens.Contains("WANT") {
			comps.Verb = "WANT"
			comps.SecondaryVerb = "GO"
			tokens.Claim("GO")
			tokens.Claim("WANT")

		} else if tokens.Claim("LIVE") {
			comps.Verb = "LIVE"
		}

		if tokens.Len() >= 2 {
			if comps.Subject == "" {
				comps.Subject, _ = tokens.ClaimFirst()
			}
			if tokens.Len() > 0 && comps.Object == "" && comps.Adjective == "" {
				comps.Object, _ = tokens.ClaimFirst()
			}

		} else if tokens.Len() == 1 {
			tok, _ := tokens.ClaimFirst()
			if comps.Subject == "" {
				comps.Subject = tok

			} else if comps.Verb == "" {
				comps.Verb = tok

			} else if comps.Object == "" {
				comps.Object = tok
			}
		}

		if tokens.Len() > 0 && comps.Verb == "" {
			comps.Verb, _ = tokens.ClaimFirst()
		}
		if rest := tokens.ClaimAll(); len(rest) > 0 && comps.Object == "" {
			comps.Object = strings.Join(rest, " ")
		}
	}

	if sentType == frame.WhQuestion && comps.WhWord == "WHAT" &&
		comps.Possessive == "YOUR" && strings.Contains(gloss, "NAME") {
		comps.Verb = "IS"
		comps.Object = "NAME"
	}

	comps.Subject = joinFingerSpelled(comps.Subject)
	comps.Object = joinFingerSpelled(comps.Object)
	comps.ProperName = joinFingerSpelled(comps.ProperName)
	return comps
}

// isNameLike tests whether a token consists of letters only (a
// finger-spelled name may carry hyphens between letters).
func isNameLike(tok string) bool {
	for _, r := range tok {
		if (r < 'A' || r > 'Z') && r != '-' {
			return false
		}
	}
	return tok != ""
}

// joinFingerSpelled collapses a hyphen-separated finger-spelled name
// ("F-A-R-A-A-N") into title case.
func joinFingerSpelled(v string) string {
	if !strings.Contains(v, "-") {
		return v
	}
	joined := strings.ReplaceAll(v, "-", "")
	return titleWord(joined)
}

func titleWord(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
