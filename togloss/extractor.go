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

// Components holds the tokens filling the grammatical slots of one
// sentence. The values reference tokens of the analyzed sentence; a
// nil pointer means the slot is unfilled.
type Components struct {
	Kind frame.ConstructionKind

	Subject      *annot.Token
	Verb         *annot.Token
	OriginalVerb *annot.Token

	// SecondaryVerb holds the infinitival complement of a want/need
	// construction ("eat" in "I want to eat")
	SecondaryVerb *annot.Token

	Object     *annot.Token
	PrepObject *annot.Token
	TimeExp    *annot.Token
	Modal      *annot.Token
	Complement *annot.Token

	// Particle holds the "on"/"off" particle of a phrasal construction
	Particle *annot.Token

	// Possessive is a rendered "marker head" pair, e.g. "my parents"
	Possessive string

	Negation bool
}

// Extract fills the grammatical slots of a sentence from its
// dependency parse. Each rule claims at most one token and earlier
// claims win; afterwards exactly one construction handler (picked by
// the root verb) may reshape the slots.
func Extract(s *annot.Sentence, lx *lexicon.Lexicon) *Components {
	comps := &Components{Kind: frame.KindRegular}

	if s.Len() > 0 && lx.IsTimeWord(strings.Trim(s.At(0).Lower(), ",")) {
		comps.TimeExp = s.At(0)
	}

	for i := 0; i < s.Len(); i++ {
		tok := s.At(i)
		switch {
		case tok.Dep == "nsubj" || tok.Dep == "nsubjpass":
			if comps.Subject == nil {
				if tok.IsDeterminer() && i+1 < s.Len() {
					comps.Subject = s.At(i + 1)

				} else {
					comps.Subject = tok
				}
			}
		case tok.Dep == "ROOT":
			comps.OriginalVerb = tok
			comps.Verb = tok
		case tok.Dep == "dobj":
			if comps.Object == nil {
				if tok.IsDeterminer() && i+1 < s.Len() {
					comps.Object = s.At(i + 1)

				} else {
					comps.Object = tok
				}
			}
		case tok.Dep == "advmod" || tok.Dep == "npadvmod" || tok.Dep == "tmod":
			if lx.IsTimeWord(strings.Trim(tok.Lower(), ",")) {
				comps.TimeExp = tok
			}
		case tok.Dep == "neg":
			comps.Negation = true
		case tok.UPos == "AUX" && tok.Lemma != "be" && tok.Lemma != "have":
			comps.Modal = tok
		case tok.Dep == "poss":
			head := s.At(tok.Head)
			if head != nil && (head.UPos == "NOUN" || head.UPos == "PROPN") {
				comps.Possessive = tok.Text + " " + entitySpan(s, head)
			}
		}
	}

	if comps.Subject == nil {
		for i := 0; i < s.Len(); i++ {
			tok := s.At(i)
			if tok.UPos == "PRON" && tok.Lower() == "i" {
				comps.Subject = tok
				break
			}
		}
	}

	if comps.OriginalVerb != nil {
		switch comps.OriginalVerb.Lemma {
		case "be":
			extractCopula(s, comps)
		case "feel":
			extractFeel(s, comps)
		case "want", "need":
			extractWantNeed(s, comps)
		case "switch", "turn":
			extractPhrasal(s, comps)
		}
	}

	if comps.PrepObject == nil && comps.Object == nil {
		comps.PrepObject = firstPrepObject(s)
	}
	return comps
}

func extractCopula(s *annot.Sentence, comps *Components) {
	comps.Kind = frame.KindCopula
	for _, child := range s.Children(comps.OriginalVerb.Idx) {
		if (child.Dep == "acomp" || child.Dep == "attr") && comps.Complement == nil {
			comps.Complement = child
			if child.UPos == "ADJ" || child.UPos == "NOUN" || child.UPos == "PROPN" {
				comps.Verb = child
			}
		}
	}
	if comps.Complement == nil {
		for _, child := range s.Children(comps.OriginalVerb.Idx) {
			if child.Dep != "prep" {
				continue
			}
			for _, gc := range s.Children(child.Idx) {
				if gc.Dep == "pobj" {
					comps.PrepObject = gc
					if comps.Verb == nil || comps.Verb == comps.OriginalVerb {
						comps.Verb = gc
					}
				}
			}
		}
	}
	// "it is an emergency" - the dummy subject is dropped in sign order
	if comps.Subject != nil && comps.Subject.Lower() == "it" &&
		comps.Complement != nil && comps.Complement.UPos == "NOUN" {
		comps.Subject = nil
	}
}

func extractFeel(s *annot.Sentence, comps *Components) {
	comps.Kind = frame.KindFeel
	for _, child := range s.Children(comps.OriginalVerb.Idx) {
		if child.Dep == "acomp" || child.Dep == "advmod" || child.Dep == "xcomp" ||
			child.UPos == "ADV" || child.UPos == "ADJ" {
			comps.Complement = child
			switch child.Lower() {
			case "well", "hot", "cold", "thirsty":
				comps.Verb = child
			}
		}
	}
}

func extractWantNeed(s *annot.Sentence, comps *Components) {
	var infinitive *annot.Token
	for _, child := range s.Children(comps.OriginalVerb.Idx) {
		if child.Dep == "xcomp" || (child.Dep == "dobj" && child.UPos == "VERB") {
			infinitive = child
			break
		}
	}
	if infinitive == nil {
		return
	}
	comps.Kind = frame.KindWantNeed
	comps.SecondaryVerb = infinitive
	if infinitive.Lemma == "take" {
		// "take rest"/"take bath" collapse into the bare noun sign
		for _, ic := range s.Children(infinitive.Idx) {
			if ic.Dep == "dobj" && (ic.Lower() == "rest" || ic.Lower() == "bath") {
				comps.SecondaryVerb = ic
				break
			}
		}
	}
	for _, ic := range s.Children(infinitive.Idx) {
		if ic.Dep != "prep" {
			continue
		}
		for _, pc := range s.Children(ic.Idx) {
			if pc.Dep == "pobj" {
				comps.PrepObject = pc
				break
			}
		}
	}
}

func extractPhrasal(s *annot.Sentence, comps *Components) {
	if comps.OriginalVerb.Dep != "ROOT" {
		return
	}
	var particle *annot.Token
	for _, child := range s.Children(comps.OriginalVerb.Idx) {
		if child.Dep == "prt" && (child.Lower() == "on" || child.Lower() == "off") {
			particle = child
			break
		}
	}
	for i := 0; i < s.Len(); i++ {
		tok := s.At(i)
		if tok.Lower() == "fan" || tok.Lower() == "light" {
			comps.PrepObject = tok
			break
		}
	}
	if comps.PrepObject != nil && particle != nil {
		comps.Kind = frame.KindPhrasal
		comps.Particle = particle
		comps.Verb = comps.PrepObject
	}
}

// entitySpan returns the full text of the named-entity span covering
// the token, so that a possessive over a multi-word name keeps the
// name together. Tokens outside any span yield their own text.
func entitySpan(s *annot.Sentence, tok *annot.Token) string {
	for _, e := range s.Entities {
		if tok.Idx >= e.Start && tok.Idx < e.End {
			return e.Text
		}
	}
	return tok.Text
}

func firstPrepObject(s *annot.Sentence) *annot.Token {
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Dep != "prep" {
			continue
		}
		for _, child := range s.Children(i) {
			if child.Dep == "pobj" {
				return child
			}
		}
	}
	return nil
}
