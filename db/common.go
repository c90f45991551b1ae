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

// Package db provides optional database backends for the lexicon
// store. A backend serves word categories (time words, wh-words, ...)
// and phrase tables (multi-word expressions, translation overrides)
// from a shared database instead of plain files.
package db

// Conf configures a lexicon database backend. An empty Type means
// no database is used and the lexicon loads from files/embedded data
// only.
type Conf struct {
	Type     string `json:"type"`
	Path     string `json:"path"`
	Host     string `json:"host"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
}

func (c *Conf) IsConfigured() bool {
	return c.Type != ""
}

// PhrasePair is a single source to target entry of a phrase table,
// returned in priority order.
type PhrasePair struct {
	Source string
	Target string
}

// Reader loads lexicon data from a backend. Implementations must keep
// result ordering stable so that repeated loads produce identical
// lexicons.
type Reader interface {

	// LoadCategory returns all words of a named category
	// (e.g. "time_word", "wh_word")
	LoadCategory(category string) ([]string, error)

	// LoadPhrases returns a named phrase table
	// (e.g. "mwe", "to_gloss", "to_english") ordered by priority
	LoadPhrases(table string) ([]PhrasePair, error)

	Close() error
}
