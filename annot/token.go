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

// Package annot defines the data model produced by an external
// linguistic annotator (tokenization, PoS tagging, lemmatization,
// dependency parsing, named entities). The transduction core never
// performs its own parsing - it only reads these structures.
package annot

import "strings"

// Token is a single annotated word. Tokens are owned by the Sentence
// that produced them and are immutable once the sentence is built.
type Token struct {
	// Text is the surface form as it appeared in the input
	Text string `json:"word"`

	// Lemma is the base form provided by the annotator
	Lemma string `json:"lemma"`

	// UPos is the coarse (universal) part of speech, e.g. VERB, NOUN, AUX
	UPos string `json:"upos"`

	// Tag is the fine-grained (Penn treebank) tag, e.g. VB, NNS, WP
	Tag string `json:"tag"`

	// Dep is the dependency label relating the token to its head,
	// e.g. nsubj, dobj, ROOT
	Dep string `json:"deprel"`

	// Idx is the zero-based position of the token within its sentence
	Idx int `json:"idx"`

	// Head is the index of the syntactic head token. The root token
	// points to itself.
	Head int `json:"head"`

	// Feats holds optional morphological features (UD style)
	Feats FeatList `json:"feats,omitempty"`
}

// Lower returns the lowercased surface form.
func (t *Token) Lower() string {
	return strings.ToLower(t.Text)
}

// IsDeterminer tests for the three English articles.
func (t *Token) IsDeterminer() bool {
	switch t.Lower() {
	case "the", "a", "an":
		return true
	}
	return false
}

// IsBaseVerb tests for a base (infinitive or imperative) verb form.
// The Penn tag decides when present; verticals carrying only UD
// features are judged by VerbForm/Mood instead.
func (t *Token) IsBaseVerb() bool {
	if t.Tag != "" {
		return IsBaseVerbTag(t.Tag)
	}
	return t.Feats.Get("VerbForm") == "Inf" || t.Feats.Get("Mood") == "Imp"
}

// IsInterrogative tests for an interrogative word, by the Penn wh-tag
// or, when no fine-grained tag is present, by the UD PronType feature.
func (t *Token) IsInterrogative() bool {
	if t.Tag != "" {
		return IsWhTag(t.Tag)
	}
	return t.Feats.Get("PronType") == "Int"
}

// Entity is a named-entity span detected by the annotator. Start and
// End delimit the covered token indices (End exclusive).
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Sentence is an ordered sequence of annotated tokens plus the
// named-entity spans found in it. It is produced once per input
// sentence and is read-only to the transduction core.
type Sentence struct {
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities,omitempty"`
}

// Len returns the number of tokens.
func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// At returns the i-th token or nil when out of range.
func (s *Sentence) At(i int) *Token {
	if i < 0 || i >= len(s.Tokens) {
		return nil
	}
	return &s.Tokens[i]
}

// Root returns the syntactic root token (dep == ROOT) or, when the
// annotator marked none, nil.
func (s *Sentence) Root() *Token {
	for i := range s.Tokens {
		if s.Tokens[i].Dep == "ROOT" {
			return &s.Tokens[i]
		}
	}
	return nil
}

// Children returns the direct dependents of the token at index head,
// in surface order.
func (s *Sentence) Children(head int) []*Token {
	var ans []*Token
	for i := range s.Tokens {
		if s.Tokens[i].Head == head && i != head {
			ans = append(ans, &s.Tokens[i])
		}
	}
	return ans
}

// Text reconstructs the surface text of the sentence by joining
// token forms with single spaces.
func (s *Sentence) Text() string {
	forms := make([]string, len(s.Tokens))
	for i := range s.Tokens {
		forms[i] = s.Tokens[i].Text
	}
	return strings.Join(forms, " ")
}

// ContainsWord tests whether any token's lowercased surface form
// equals the provided (lowercase) word.
func (s *Sentence) ContainsWord(word string) bool {
	for i := range s.Tokens {
		if s.Tokens[i].Lower() == word {
			return true
		}
	}
	return false
}

// Annotator is the external collaborator turning raw English text into
// an annotated sentence. Implementations must be safe for concurrent
// use.
type Annotator interface {
	Annotate(text string) (*Sentence, error)
}
