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

package factory

import (
	"fmt"

	"github.com/czcorpus/islgloss/db"
	"github.com/czcorpus/islgloss/db/mysql"
	"github.com/czcorpus/islgloss/db/sqlite"
)

// NewReader instantiates a lexicon database reader matching the
// configured backend type ("sqlite" or "mysql").
func NewReader(conf *db.Conf) (db.Reader, error) {
	switch conf.Type {
	case "sqlite":
		rd := &sqlite.Reader{Path: conf.Path}
		if err := rd.Open(); err != nil {
			return nil, err
		}
		return rd, nil
	case "mysql":
		rd := &mysql.Reader{
			Host:     conf.Host,
			Name:     conf.Name,
			User:     conf.User,
			Password: conf.Password,
		}
		if err := rd.Open(); err != nil {
			return nil, err
		}
		return rd, nil
	default:
		return nil, fmt.Errorf("unknown lexicon database type '%s'", conf.Type)
	}
}
