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

package mysql

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/islgloss/db"

	_ "github.com/go-sql-driver/mysql" // mysql driver load
)

// Reader serves lexicon categories and phrase tables from a shared
// MySQL/MariaDB instance. This is intended for installations where
// several services share one curated sign vocabulary.
type Reader struct {
	database *sql.DB
	Host     string
	Name     string
	User     string
	Password string
}

// Open connects the reader to the configured database.
func (r *Reader) Open() error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s", r.User, r.Password, r.Host, r.Name)
	var err error
	r.database, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open mysql lexicon database: %w", err)
	}
	r.database.SetConnMaxLifetime(3 * time.Minute)
	r.database.SetMaxOpenConns(2)
	log.Info().Str("host", r.Host).Str("name", r.Name).Msg("opened mysql lexicon database")
	return nil
}

func (r *Reader) LoadCategory(category string) ([]string, error) {
	rows, err := r.database.Query(
		"SELECT word FROM lexicon_word WHERE category = ? ORDER BY word", category)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon category %s: %w", category, err)
	}
	defer rows.Close()
	var ans []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to load lexicon category %s: %w", category, err)
		}
		ans = append(ans, word)
	}
	return ans, rows.Err()
}

func (r *Reader) LoadPhrases(table string) ([]db.PhrasePair, error) {
	rows, err := r.database.Query(
		"SELECT source, target FROM lexicon_phrase WHERE tbl = ? ORDER BY priority, source",
		table)
	if err != nil {
		return nil, fmt.Errorf("failed to load phrase table %s: %w", table, err)
	}
	defer rows.Close()
	var ans []db.PhrasePair
	for rows.Next() {
		var item db.PhrasePair
		if err := rows.Scan(&item.Source, &item.Target); err != nil {
			return nil, fmt.Errorf("failed to load phrase table %s: %w", table, err)
		}
		ans = append(ans, item)
	}
	return ans, rows.Err()
}

func (r *Reader) Close() error {
	if r.database != nil {
		return r.database.Close()
	}
	return nil
}
