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

var (
	pennToUPos = map[string]string{
		"CC":   "CCONJ",
		"CD":   "NUM",
		"DT":   "DET",
		"EX":   "PRON",
		"FW":   "X",
		"IN":   "ADP",
		"JJ":   "ADJ",
		"JJR":  "ADJ",
		"JJS":  "ADJ",
		"MD":   "AUX",
		"NN":   "NOUN",
		"NNS":  "NOUN",
		"NNP":  "PROPN",
		"NNPS": "PROPN",
		"PDT":  "DET",
		"POS":  "PART",
		"PRP":  "PRON",
		"PRP$": "PRON",
		"RB":   "ADV",
		"RBR":  "ADV",
		"RBS":  "ADV",
		"RP":   "PART",
		"SYM":  "SYM",
		"TO":   "PART",
		"UH":   "INTJ",
		"VB":   "VERB",
		"VBD":  "VERB",
		"VBG":  "VERB",
		"VBN":  "VERB",
		"VBP":  "VERB",
		"VBZ":  "VERB",
		"WDT":  "DET",
		"WP":   "PRON",
		"WP$":  "PRON",
		"WRB":  "ADV",
	}

	whTags = map[string]bool{
		"WDT": true,
		"WP":  true,
		"WP$": true,
		"WRB": true,
	}
)

// UPosFromPenn maps a Penn treebank tag onto a coarse universal PoS
// value. Unknown tags map to "X".
func UPosFromPenn(tag string) string {
	v, ok := pennToUPos[tag]
	if !ok {
		return "X"
	}
	return v
}

// IsWhTag tests whether a fine-grained tag marks an interrogative word
// (wh-determiner, wh-pronoun, possessive wh-pronoun or wh-adverb).
func IsWhTag(tag string) bool {
	return whTags[tag]
}

// IsBaseVerbTag tests for the Penn base verb form used by the
// imperative heuristic.
func IsBaseVerbTag(tag string) bool {
	return tag == "VB"
}
