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

package sqlite

import (
	"database/sql"
	"fmt"
)

// CreateSchema (re)creates the two lexicon tables. It is used by the
// import command and by tests; existing data is dropped.
func CreateSchema(database *sql.DB) error {
	for _, q := range []string{
		"DROP TABLE IF EXISTS lexicon_word",
		"DROP TABLE IF EXISTS lexicon_phrase",
		`CREATE TABLE lexicon_word (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			word TEXT NOT NULL
		)`,
		`CREATE TABLE lexicon_phrase (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tbl TEXT NOT NULL,
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			priority INTEGER NOT NULL DEFAULT 0
		)`,
		"CREATE INDEX lexicon_word_category_idx ON lexicon_word(category)",
		"CREATE INDEX lexicon_phrase_tbl_idx ON lexicon_phrase(tbl)",
	} {
		if _, err := database.Exec(q); err != nil {
			return fmt.Errorf("failed to create lexicon schema: %w", err)
		}
	}
	return nil
}

// InsertWord adds a word into a category.
func InsertWord(database *sql.DB, category, word string) error {
	_, err := database.Exec(
		"INSERT INTO lexicon_word (category, word) VALUES (?, ?)", category, word)
	if err != nil {
		return fmt.Errorf("failed to insert lexicon word: %w", err)
	}
	return nil
}

// InsertPhrase adds a source → target pair into a phrase table.
func InsertPhrase(database *sql.DB, table, source, target string, priority int) error {
	_, err := database.Exec(
		"INSERT INTO lexicon_phrase (tbl, source, target, priority) VALUES (?, ?, ?, ?)",
		table, source, target, priority)
	if err != nil {
		return fmt.Errorf("failed to insert lexicon phrase: %w", err)
	}
	return nil
}
