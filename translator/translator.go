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

// Package translator provides the top-level bidirectional facade. It
// owns input normalization, override lookup, clause splitting and the
// final fallbacks; the per-sentence work is delegated to the togloss
// and toenglish pipelines. Both directions always return a string,
// never an error - a failed analysis degrades to a best-effort
// rendering.
package translator

import (
	"regexp"
	"strings"

	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/lexicon"
	"github.com/czcorpus/islgloss/toenglish"
	"github.com/czcorpus/islgloss/togloss"
	"github.com/rs/zerolog/log"
)

var (
	punctRe    = regexp.MustCompile(`[^\w\s]`)
	clauseRe   = regexp.MustCompile(`,| and `)
	multiWhKey = "name, age and from which place"
)

// Translator converts between English sentences and sign glosses.
// The annotator is optional; without one the English-to-gloss
// direction is limited to override and correction matching.
type Translator struct {
	lx        *lexicon.Lexicon
	annotator annot.Annotator
	inflector toenglish.Inflector
}

func New(lx *lexicon.Lexicon, annotator annot.Annotator, inflector toenglish.Inflector) *Translator {
	if inflector == nil {
		inflector = toenglish.TableInflector{}
	}
	return &Translator{lx: lx, annotator: annotator, inflector: inflector}
}

// normalizeOverrideKey strips punctuation the way override table keys
// are stored on the English side.
func normalizeOverrideKey(s string) string {
	return strings.TrimSpace(punctRe.ReplaceAllString(s, ""))
}

// ToGloss translates an English sentence (possibly several clauses)
// into a sign gloss.
func (tr *Translator) ToGloss(sentence string) (ans string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("sentence", sentence).
				Msg("recovered from a failed gloss analysis")
			ans = tr.glossFallback(sentence, "")
		}
	}()

	clean := strings.ToLower(strings.TrimSpace(sentence))
	clean = strings.TrimSuffix(clean, ".")
	if gloss, ok := tr.lx.ToGloss.Lookup(normalizeOverrideKey(clean)); ok {
		return gloss
	}

	var glosses []string
	for _, part := range splitClauses(sentence) {
		if gloss := tr.glossClause(part); gloss != "" {
			glosses = append(glosses, gloss)
		}
	}
	return tr.glossFallback(sentence, strings.Join(glosses, ". "))
}

// splitClauses breaks the input on sentence boundaries; complex
// questions additionally split on commas and "and", except for the
// combined personal-details question which keeps its shape.
func splitClauses(sentence string) []string {
	var parts []string
	for _, part := range strings.Split(sentence, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		complex := strings.Contains(part, ",") || strings.Contains(part, " and ")
		if strings.HasSuffix(part, "?") && complex &&
			!strings.Contains(strings.ToLower(part), multiWhKey) {
			for _, sub := range clauseRe.Split(part, -1) {
				if sub = strings.TrimSpace(sub); sub != "" {
					parts = append(parts, sub)
				}
			}

		} else {
			parts = append(parts, part)
		}
	}
	return parts
}

func (tr *Translator) glossClause(part string) string {
	clean := strings.ToLower(strings.TrimSpace(part))
	clean = strings.TrimSuffix(strings.TrimSuffix(clean, "."), "?")
	if gloss, ok := tr.lx.ToGloss.Lookup(normalizeOverrideKey(clean)); ok {
		return gloss
	}
	if tr.annotator == nil {
		gloss, _ := tr.lx.ApplyCorrections(clean)
		return gloss
	}
	sent, err := tr.annotator.Annotate(part)
	if err != nil {
		log.Warn().Err(err).Str("clause", part).Msg("annotation failed, trying corrections")
		gloss, _ := tr.lx.ApplyCorrections(clean)
		return gloss
	}
	gloss := togloss.FromSentence(sent, tr.lx)
	if corrected, ok := tr.lx.ApplyCorrections(clean); ok {
		gloss = corrected
	}
	return gloss
}

// GlossFromAnnotated translates a sentence which already carries a
// dependency parse, e.g. one read from a pre-annotated corpus
// vertical. No annotator service is involved.
func (tr *Translator) GlossFromAnnotated(sent *annot.Sentence) (ans string) {
	text := sent.Text()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("sentence", text).
				Msg("recovered from a failed gloss analysis")
			ans = tr.glossFallback(text, "")
		}
	}()

	clean := strings.ToLower(strings.TrimSpace(text))
	clean = strings.TrimSuffix(strings.TrimSuffix(clean, "."), "?")
	if gloss, ok := tr.lx.ToGloss.Lookup(normalizeOverrideKey(clean)); ok {
		return gloss
	}
	gloss := togloss.FromSentence(sent, tr.lx)
	if corrected, ok := tr.lx.ApplyCorrections(clean); ok {
		gloss = corrected
	}
	return tr.glossFallback(text, gloss)
}

// glossFallback covers inputs where no clause produced a gloss.
func (tr *Translator) glossFallback(sentence, result string) string {
	if result != "" {
		return result
	}
	clean := strings.ToLower(strings.TrimSpace(sentence))
	switch {
	case strings.Contains(clean, "name") && strings.Contains(clean, "?"):
		return "YOUR NAME WHAT?"
	case strings.Contains(clean, "thirsty"):
		return "I THIRSTY"
	}
	return ""
}

// ToEnglish translates a sign gloss (possibly several sentences) into
// English.
func (tr *Translator) ToEnglish(gloss string) (ans string) {
	norm := strings.ToUpper(strings.TrimSpace(gloss))

	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("gloss", norm).
				Msg("recovered from a failed gloss parse")
			ans = toenglish.Fallback(norm, tr.lx, tr.inflector)
		}
	}()

	if eng, ok := tr.lx.ToEnglish.Lookup(norm); ok {
		return eng
	}
	if eng, ok := tr.lx.ToEnglish.Lookup(strings.TrimSpace(strings.TrimSuffix(norm, "?"))); ok {
		return eng
	}

	if strings.Contains(norm, ".") && !strings.HasSuffix(norm, ".") {
		var parts []string
		for _, part := range strings.Split(norm, ".") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, tr.ToEnglish(part))
			}
		}
		return strings.Join(parts, " ")
	}
	return toenglish.FromGloss(norm, tr.lx, tr.inflector)
}
