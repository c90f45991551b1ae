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

package annot

import (
	"fmt"
	"strings"
)

// Feat is a single morphological feature (key, value) pair.
type Feat [2]string

func (f Feat) Key() string {
	return f[0]
}

func (f Feat) Value() string {
	return f[1]
}

// FeatList is an ordered list of morphological features.
type FeatList []Feat

// Get returns the value of the feature with the provided key
// (empty string when absent).
func (f FeatList) Get(key string) string {
	for _, v := range f {
		if v.Key() == key {
			return v.Value()
		}
	}
	return ""
}

// ParseFeats parses a UD-style serialized feature list
// ("Number=Sing|Person=3"). The underscore placeholder and empty
// strings yield an empty list.
func ParseFeats(s string) (FeatList, error) {
	items := strings.Split(s, "|")
	feats := make(FeatList, 0, len(items))
	for _, item := range items {
		tmp := strings.SplitN(item, "=", 2)
		if len(tmp) == 0 || item == "" || item == "_" {
			return FeatList{}, nil
		}
		if len(tmp) == 1 {
			return FeatList{}, fmt.Errorf("unparseable feature '%s'", item)
		}
		if tmp[0] == "_" {
			continue
		}
		feats = append(feats, Feat{tmp[0], tmp[1]})
	}
	return feats, nil
}
