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

// Package lexicon provides the word lists, phrase tables and override
// tables the transduction pipelines consult. The closed grammatical
// classes (modals, copulas, possessive markers etc.) are compiled in;
// the open lists (time expressions, overrides, multi-word expressions)
// are embedded defaults which can be replaced or extended via files
// or a database backend.
package lexicon

import (
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

// Entry is a single override pair. The tables are deliberately not
// inverses of each other - each direction carries its own curated set.
type Entry struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// OverrideTable is a priority-ordered list of exact-match overrides.
// Later additions win over earlier ones with the same key, which lets
// a user-supplied table shadow the embedded defaults.
type OverrideTable struct {
	entries []Entry
	index   map[string]string
}

func NewOverrideTable() *OverrideTable {
	return &OverrideTable{index: make(map[string]string)}
}

func (ot *OverrideTable) Add(input, output string) {
	if _, ok := ot.index[input]; !ok {
		ot.entries = append(ot.entries, Entry{Input: input, Output: output})
	}
	ot.index[input] = output
}

func (ot *OverrideTable) Lookup(key string) (string, bool) {
	v, ok := ot.index[key]
	return v, ok
}

func (ot *OverrideTable) Size() int {
	return len(ot.entries)
}

// Entries returns the table contents in insertion order.
func (ot *OverrideTable) Entries() []Entry {
	return ot.entries
}

// Correction rewrites a whole English sentence to a fixed gloss when
// the sentence contains a known substring. Corrections are applied
// after the rule pipeline as a final cleanup of hard cases.
type Correction struct {
	Contains string `json:"contains"`
	Gloss    string `json:"gloss"`
}

// MWE is a multi-word expression mapping between a gloss-side phrase
// and its English rendering.
type MWE struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Lexicon bundles all the lists a translator instance needs. The
// zero value is not usable; construct one via Default or Load.
type Lexicon struct {
	TimeWords   []string
	WhWords     []string
	ToGloss     *OverrideTable
	ToEnglish   *OverrideTable
	Corrections []Correction
	MWEs        []MWE
}

// closed grammatical classes of the gloss language; ordering matters
// where noted (SpecialVerbs are tested in order during extraction)

var adjectives = []string{
	"HAPPY", "THIRSTY", "BUSY", "COMFORTABLE", "HOT", "SAD", "DANGER",
	"RIGHT", "WRONG", "BIG", "SMALL", "HUNGRY", "TIRED", "SICK", "GOOD",
	"BAD", "TALL", "SHORT", "FAT", "THIN", "BEAUTIFUL", "UGLY", "OLD",
	"YOUNG",
}

var modalVerbs = []string{"CAN"}

var specialVerbs = []string{"FEEL", "HAVE", "WANT", "NEED"}

var beVerbs = []string{"IS", "AM", "ARE", "WAS", "WERE", "BE"}

var auxiliaryVerbs = []string{"DO", "DOES", "DID"}

var placeNouns = []string{
	"SCHOOL", "MARKET", "HOUSE", "HOSPITAL", "OFFICE", "SHOP", "STORE",
	"HOME", "PARK", "LIBRARY",
}

var possessiveMarkers = []string{"MY", "YOUR", "HIS", "HER", "ITS", "OUR", "THEIR"}

func Adjectives() []string {
	return adjectives
}

// SpecialVerbs returns the special verb glosses in their extraction
// priority order.
func SpecialVerbs() []string {
	return specialVerbs
}

func PlaceNouns() []string {
	return placeNouns
}

func (lx *Lexicon) IsTimeWord(w string) bool {
	return collections.SliceContains(lx.TimeWords, strings.ToLower(w))
}

func (lx *Lexicon) IsWhWord(w string) bool {
	return collections.SliceContains(lx.WhWords, strings.ToLower(w))
}

func (lx *Lexicon) IsAdjective(gloss string) bool {
	return collections.SliceContains(adjectives, strings.ToUpper(gloss))
}

func (lx *Lexicon) IsModal(gloss string) bool {
	return collections.SliceContains(modalVerbs, strings.ToUpper(gloss))
}

func (lx *Lexicon) IsSpecialVerb(gloss string) bool {
	return collections.SliceContains(specialVerbs, strings.ToUpper(gloss))
}

func (lx *Lexicon) IsBeVerb(gloss string) bool {
	return collections.SliceContains(beVerbs, strings.ToUpper(gloss))
}

func (lx *Lexicon) IsAuxiliaryVerb(gloss string) bool {
	return collections.SliceContains(auxiliaryVerbs, strings.ToUpper(gloss))
}

func (lx *Lexicon) IsPlaceNoun(gloss string) bool {
	return collections.SliceContains(placeNouns, strings.ToUpper(gloss))
}

func (lx *Lexicon) IsPossessive(gloss string) bool {
	return collections.SliceContains(possessiveMarkers, strings.ToUpper(gloss))
}

// MWETarget returns the English rendering of a gloss-side multi-word
// expression, or false if the phrase is unknown.
func (lx *Lexicon) MWETarget(source string) (string, bool) {
	for _, m := range lx.MWEs {
		if m.Source == source {
			return m.Target, true
		}
	}
	return "", false
}

// ApplyCorrections tests a normalized English sentence against the
// contains-rules and returns the corrected gloss if any rule matches.
func (lx *Lexicon) ApplyCorrections(sentence string) (string, bool) {
	for _, c := range lx.Corrections {
		if strings.Contains(sentence, c.Contains) {
			return c.Gloss, true
		}
	}
	return "", false
}
