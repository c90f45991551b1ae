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

package toenglish

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/czcorpus/islgloss/lexicon"
)

var (
	namePattern      = regexp.MustCompile(`^I\s+([A-Z]+)$`)
	yesterdayPattern = regexp.MustCompile(`^YESTERDAY\s+I\s+([A-Z]+)(\s+.*)?$`)
	tomorrowPattern  = regexp.MustCompile(`^TOMORROW\s+I\s+([A-Z]+)(\s+.*)?$`)
	goPlacePattern   = regexp.MustCompile(`^I\s+WANT\s+GO\s+([A-Z]+)$`)
	personAdjPattern = regexp.MustCompile(`^([A-Z]+)\s+([A-Z]+)$`)
	whatYourPattern  = regexp.MustCompile(`^WHAT\s+YOUR\s+([A-Z]+)$`)
	whereYouPattern  = regexp.MustCompile(`^WHERE\s+YOU\s+([A-Z]+)$`)
	yourWherePattern = regexp.MustCompile(`^YOUR\s+([A-Z]+)\s+WHERE$`)
	strangerPattern  = regexp.MustCompile(`^STRANGER\s+([A-Z]+)\s+IN$`)
)

// MatchPattern tests a normalized gloss against the structural
// patterns handled without full extraction. These cover frequent
// shapes whose English form is fully determined by one or two slots.
func MatchPattern(gloss string, lx *lexicon.Lexicon, inf Inflector) (string, bool) {
	if m := namePattern.FindStringSubmatch(gloss); m != nil {
		name := m[1]
		if !lx.IsAdjective(name) && !lx.IsSpecialVerb(name) && !lx.IsModal(name) {
			return fmt.Sprintf("I am %s.", titleWord(name)), true
		}
	}
	if m := yesterdayPattern.FindStringSubmatch(gloss); m != nil {
		verb := strings.ToLower(m[1])
		rest := strings.TrimSpace(m[2])
		if verb == "go" {
			if rest != "" {
				return fmt.Sprintf("Yesterday, I went to %s.", strings.ToLower(rest)), true
			}
			return "Yesterday, I went.", true
		}
		past := inf.Inflect(verb, Past, Singular)
		if rest != "" {
			return fmt.Sprintf("Yesterday, I %s %s.", past, strings.ToLower(rest)), true
		}
		return fmt.Sprintf("Yesterday, I %s.", past), true
	}
	if m := tomorrowPattern.FindStringSubmatch(gloss); m != nil {
		verb := strings.ToLower(m[1])
		rest := strings.TrimSpace(m[2])
		if verb == "go" && strings.Contains(rest, "SCHOOL") {
			return "Tomorrow, I will go to school.", true
		}
		if rest != "" {
			return fmt.Sprintf("Tomorrow, I will %s %s.", verb, strings.ToLower(rest)), true
		}
		return fmt.Sprintf("Tomorrow, I will %s.", verb), true
	}
	if m := goPlacePattern.FindStringSubmatch(gloss); m != nil {
		return fmt.Sprintf("I want to go to the %s.", strings.ToLower(m[1])), true
	}
	if m := personAdjPattern.FindStringSubmatch(gloss); m != nil && lx.IsAdjective(m[2]) {
		return fmt.Sprintf("%s %s %s.", titleWord(m[1]), beFormFor(m[1]), strings.ToLower(m[2])), true
	}
	if m := whatYourPattern.FindStringSubmatch(gloss); m != nil {
		return fmt.Sprintf("What is your %s?", strings.ToLower(m[1])), true
	}
	if m := whereYouPattern.FindStringSubmatch(gloss); m != nil {
		return fmt.Sprintf("Where do you %s?", strings.ToLower(m[1])), true
	}
	if m := yourWherePattern.FindStringSubmatch(gloss); m != nil {
		return fmt.Sprintf("Where is your %s?", strings.ToLower(m[1])), true
	}
	if m := strangerPattern.FindStringSubmatch(gloss); m != nil {
		return fmt.Sprintf("There is a stranger in the %s.", strings.ToLower(m[1])), true
	}
	return "", false
}

func beFormFor(subject string) string {
	switch subject {
	case "I":
		return "am"
	case "YOU", "WE", "THEY":
		return "are"
	}
	return "is"
}
