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

// Package frame defines the sentence categories and construction
// kinds shared by the English-to-gloss and gloss-to-English
// transduction directions. The slot records themselves are owned by
// the respective pipelines, which fill different slot sets.
package frame

// SentenceType is one of the four sentence categories the transducer
// distinguishes. It is assigned once by a classifier and never changes
// afterwards.
type SentenceType string

const (
	Declarative    SentenceType = "declarative"
	Imperative     SentenceType = "imperative"
	YesNoQuestion  SentenceType = "yes-no-question"
	WhQuestion     SentenceType = "wh-question"
)

func (st SentenceType) IsQuestion() bool {
	return st == YesNoQuestion || st == WhQuestion
}

// ConstructionKind identifies the grammatical pattern governing the
// main verb of a sentence. Exactly one kind applies per sentence; the
// extractor classifies the root once and then invokes a single handler
// for that kind.
type ConstructionKind int

const (
	// KindRegular - an ordinary transitive/intransitive verb
	KindRegular ConstructionKind = iota

	// KindCopula - a "be" root with an adjectival or nominal complement
	KindCopula

	// KindFeel - a "feel" root with an adjectival/adverbial complement
	KindFeel

	// KindWantNeed - "want"/"need" followed by an infinitival complement
	KindWantNeed

	// KindPhrasal - a phrasal root like "switch on" whose particle and
	// object collapse into a single rendered sign
	KindPhrasal
)

func (ck ConstructionKind) String() string {
	switch ck {
	case KindCopula:
		return "copula"
	case KindFeel:
		return "feel"
	case KindWantNeed:
		return "want-need"
	case KindPhrasal:
		return "phrasal"
	default:
		return "regular"
	}
}
