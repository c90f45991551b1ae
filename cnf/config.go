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

package cnf

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/db"
	"github.com/czcorpus/islgloss/lexicon"
)

const (
	DfltServerAddress = "127.0.0.1:8080"
	DfltEncoding      = "utf-8"
)

// ServerConf configures the HTTP translation service.
type ServerConf struct {
	Address        string   `json:"address"`
	AllowedOrigins []string `json:"allowedOrigins"`
}

// VerticalConf configures ingestion of pre-annotated sentences
// from a vertical file (used by the batch and validate commands).
type VerticalConf struct {
	Encoding string                `json:"encoding"`
	Columns  annot.VerticalColumns `json:"columns"`
}

// Conf holds configuration for a concrete translation setup.
type Conf struct {
	// AnnotatorURL is the address of an external dependency-parsing
	// service. If empty, only the gloss-to-English direction and
	// override/pattern matching in the English-to-gloss direction
	// are available.
	AnnotatorURL string `json:"annotatorUrl"`

	Lexicon lexicon.Paths `json:"lexicon"`

	// DB optionally supplements the lexicon from a database.
	DB db.Conf `json:"db"`

	Server ServerConf `json:"server"`

	Vertical VerticalConf `json:"vertical"`

	LogLevel string `json:"logLevel"`
}

func (c *Conf) HasConfiguredAnnotator() bool {
	return c.AnnotatorURL != ""
}

func (c *Conf) ApplyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DfltServerAddress
	}
	if c.Vertical.Encoding == "" {
		c.Vertical.Encoding = DfltEncoding
	}
	if c.Vertical.Columns.IsZero() {
		c.Vertical.Columns = annot.DefaultVerticalColumns()
	}
}

func (c *Conf) Validate() error {
	if c.DB.IsConfigured() {
		if c.DB.Type != "sqlite" && c.DB.Type != "mysql" {
			return fmt.Errorf("unsupported db type: %s", c.DB.Type)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", c.LogLevel)
	}
	return nil
}

// Default returns a configuration usable without any config file -
// embedded lexicon, no database, no annotator service.
func Default() *Conf {
	conf := &Conf{}
	conf.ApplyDefaults()
	return conf
}

func LoadConf(confPath string) (*Conf, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, err
	}
	var conf Conf
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, err
	}
	conf.ApplyDefaults()
	return &conf, nil
}
