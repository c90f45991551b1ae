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
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"
)

// VerticalColumns maps positional attributes of a vertical file onto
// the annotation attributes the transducer needs. Column 0 is always
// the word form.
type VerticalColumns struct {
	Lemma  int `json:"lemma"`
	UPos   int `json:"upos"`
	Tag    int `json:"tag"`
	Deprel int `json:"deprel"`
	Head   int `json:"head"`
	Feats  int `json:"feats"`
}

// IsZero tests whether no column mapping was configured at all.
func (vc VerticalColumns) IsZero() bool {
	return vc == VerticalColumns{}
}

// DefaultVerticalColumns matches the word/lemma/upos/tag/deprel/head/feats
// layout our annotation exports use.
func DefaultVerticalColumns() VerticalColumns {
	return VerticalColumns{Lemma: 1, UPos: 2, Tag: 3, Deprel: 4, Head: 5, Feats: 6}
}

// SentenceHandler consumes one assembled sentence. Returning an error
// stops the parsing.
type SentenceHandler func(s *Sentence) error

// VerticalReader assembles Sentence values from a pre-annotated corpus
// vertical file. Parsed values are received pasivelly by implementing
// vertigo.LineProcessor; tokens between an opening and closing sentence
// structure form one Sentence.
type VerticalReader struct {
	cols       VerticalColumns
	sentStruct string
	current    []Token
	onSentence SentenceHandler
}

// NewVerticalReader creates a reader flushing a Sentence each time the
// structure sentStruct (typically "s") closes.
func NewVerticalReader(cols VerticalColumns, sentStruct string, onSentence SentenceHandler) *VerticalReader {
	return &VerticalReader{
		cols:       cols,
		sentStruct: sentStruct,
		current:    make([]Token, 0, 20),
		onSentence: onSentence,
	}
}

func (vr *VerticalReader) posAttr(tk *vertigo.Token, idx int) string {
	if idx <= 0 {
		return ""
	}
	if idx-1 < len(tk.Attrs) {
		return tk.Attrs[idx-1]
	}
	return ""
}

// ProcToken is a part of vertigo.LineProcessor implementation.
// It is called by Vertigo parser when a token line is encountered.
func (vr *VerticalReader) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return fmt.Errorf("failed to process vertical line %d: %w", line, err)
	}
	idx := len(vr.current)
	tok := Token{
		Text:  tk.Word,
		Lemma: vr.posAttr(tk, vr.cols.Lemma),
		UPos:  vr.posAttr(tk, vr.cols.UPos),
		Tag:   vr.posAttr(tk, vr.cols.Tag),
		Dep:   vr.posAttr(tk, vr.cols.Deprel),
		Idx:   idx,
		Head:  idx,
	}
	if tok.UPos == "" {
		tok.UPos = UPosFromPenn(tok.Tag)
	}
	if strings.EqualFold(tok.Dep, "root") {
		tok.Dep = "ROOT"
	}
	if rawHead := vr.posAttr(tk, vr.cols.Head); rawHead != "" {
		head, convErr := strconv.Atoi(rawHead)
		if convErr != nil {
			log.Warn().
				Int("lineNumber", line).
				Str("value", rawHead).
				Msg("invalid head reference, token becomes its own head")

		} else if head > 0 {
			tok.Head = head - 1
		}
	}
	if rawFeats := vr.posAttr(tk, vr.cols.Feats); rawFeats != "" {
		feats, convErr := ParseFeats(rawFeats)
		if convErr != nil {
			log.Warn().Err(convErr).Int("lineNumber", line).Msg("skipping unparseable feats")

		} else {
			tok.Feats = feats
		}
	}
	vr.current = append(vr.current, tok)
	return nil
}

// ProcStruct is a part of vertigo.LineProcessor implementation.
// It si called by Vertigo parser when an opening structure tag
// is encountered.
func (vr *VerticalReader) ProcStruct(st *vertigo.Structure, line int, err error) error {
	if err != nil {
		return fmt.Errorf("failed to process vertical line %d: %w", line, err)
	}
	if st.Name == vr.sentStruct {
		vr.current = vr.current[:0]
	}
	return nil
}

// ProcStructClose is a part of vertigo.LineProcessor implementation.
// It is called by Vertigo parser when a closing structure tag is
// encountered.
func (vr *VerticalReader) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return fmt.Errorf("failed to process vertical line %d: %w", line, err)
	}
	if st.Name != vr.sentStruct || len(vr.current) == 0 {
		return nil
	}
	sent := &Sentence{Tokens: make([]Token, len(vr.current))}
	copy(sent.Tokens, vr.current)
	vr.current = vr.current[:0]
	return vr.onSentence(sent)
}

// ReadVertical parses a vertical file and feeds each assembled sentence
// to onSentence.
func ReadVertical(path, encoding string, cols VerticalColumns, onSentence SentenceHandler) error {
	parserConf := &vertigo.ParserConf{
		InputFilePath:         path,
		StructAttrAccumulator: "nil",
		Encoding:              encoding,
	}
	vr := NewVerticalReader(cols, "s", onSentence)
	if err := vertigo.ParseVerticalFile(parserConf, vr); err != nil {
		return fmt.Errorf("failed to parse vertical file: %w", err)
	}
	return nil
}

// LoadVertical reads a whole vertical file into memory.
func LoadVertical(path, encoding string, cols VerticalColumns) ([]*Sentence, error) {
	var ans []*Sentence
	err := ReadVertical(path, encoding, cols, func(s *Sentence) error {
		ans = append(ans, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ans, nil
}
