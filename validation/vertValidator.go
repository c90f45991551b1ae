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

// Package validation checks pre-annotated corpus verticals before
// batch translation: structure nesting, column counts and dependency
// head references.
package validation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/czcorpus/islgloss/annot"
	"github.com/rs/zerolog/log"

	"github.com/tomachalek/vertigo/v5"
)

var ErrTooManyErrors = errors.New("too many validation errors")

// Report summarizes the validation of a single vertical file.
type Report struct {
	File         string
	NumSentences int
	NumTokens    int
	Errors       []string
}

func (r *Report) IsValid() bool {
	return len(r.Errors) == 0
}

// VertValidator checks a vertical file against the column mapping used
// by the batch translator. Parsed values are received pasivelly by
// implementing vertigo.LineProcessor.
type VertValidator struct {
	ctx          context.Context
	cols         annot.VerticalColumns
	sentStruct   string
	maxNumErrors int
	openStructs  []string
	numInSent    int
	rootsInSent  int
	inSentence   bool
	report       *Report
}

// NewVertValidator is a factory function to instantiate
// a proper VertValidator.
func NewVertValidator(
	ctx context.Context,
	cols annot.VerticalColumns,
	sentStruct string,
	maxNumErrors int,
) *VertValidator {
	return &VertValidator{
		ctx:          ctx,
		cols:         cols,
		sentStruct:   sentStruct,
		maxNumErrors: maxNumErrors,
		openStructs:  make([]string, 0, 20),
		report:       &Report{},
	}
}

// minNumAttrs returns the number of positional attributes (not
// counting the word column) a token line must carry.
func (vv *VertValidator) minNumAttrs() int {
	ans := 0
	for _, v := range []int{
		vv.cols.Lemma, vv.cols.UPos, vv.cols.Tag,
		vv.cols.Deprel, vv.cols.Head,
	} {
		if v > ans {
			ans = v
		}
	}
	return ans
}

func (vv *VertValidator) addError(line int, msg string) error {
	vv.report.Errors = append(
		vv.report.Errors, fmt.Sprintf("line %d: %s", line, msg))
	if len(vv.report.Errors) > vv.maxNumErrors {
		return ErrTooManyErrors
	}
	return nil
}

// ProcToken is a part of vertigo.LineProcessor implementation.
// It is called by Vertigo parser when a token line is encountered.
func (vv *VertValidator) ProcToken(tk *vertigo.Token, line int, err error) error {
	if cerr := vv.ctx.Err(); cerr != nil {
		return cerr
	}
	if err != nil {
		return vv.addError(line, err.Error())
	}
	vv.report.NumTokens++
	if !vv.inSentence {
		return vv.addError(line, fmt.Sprintf(
			"token outside of a <%s> structure", vv.sentStruct))
	}
	vv.numInSent++
	if len(tk.Attrs) < vv.minNumAttrs() {
		return vv.addError(line, fmt.Sprintf(
			"expected at least %d positional attributes, found %d",
			vv.minNumAttrs(), len(tk.Attrs)))
	}
	if vv.cols.Deprel > 0 && vv.cols.Deprel-1 < len(tk.Attrs) {
		if dep := tk.Attrs[vv.cols.Deprel-1]; strings.EqualFold(dep, "root") {
			vv.rootsInSent++
		}
	}
	if vv.cols.Head > 0 && vv.cols.Head-1 < len(tk.Attrs) {
		rawHead := tk.Attrs[vv.cols.Head-1]
		if _, convErr := strconv.Atoi(rawHead); rawHead != "" && convErr != nil {
			return vv.addError(line, fmt.Sprintf(
				"head reference is not a number: %s", rawHead))
		}
	}
	return nil
}

// ProcStruct is a part of vertigo.LineProcessor implementation.
// It si called by Vertigo parser when an opening structure tag
// is encountered.
func (vv *VertValidator) ProcStruct(st *vertigo.Structure, line int, err error) error {
	if cerr := vv.ctx.Err(); cerr != nil {
		return cerr
	}
	if err != nil {
		return vv.addError(line, err.Error())
	}
	if !st.IsEmpty {
		for _, v := range vv.openStructs {
			if v == st.Name {
				return vv.addError(line, fmt.Sprintf(
					"structure %s is already opened", st.Name))
			}
		}
		vv.openStructs = append(vv.openStructs, st.Name)
	}
	if st.Name == vv.sentStruct {
		vv.inSentence = true
		vv.numInSent = 0
		vv.rootsInSent = 0
	}
	return nil
}

// ProcStructClose is a part of vertigo.LineProcessor implementation.
// It is called by Vertigo parser when a closing structure tag is
// encountered.
func (vv *VertValidator) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if cerr := vv.ctx.Err(); cerr != nil {
		return cerr
	}
	if err != nil {
		return vv.addError(line, err.Error())
	}
	if len(vv.openStructs) == 0 || vv.openStructs[len(vv.openStructs)-1] != st.Name {
		return vv.addError(line, fmt.Sprintf(
			"unexpected closing element `%s`", st.Name))
	}
	vv.openStructs = vv.openStructs[:len(vv.openStructs)-1]

	if st.Name == vv.sentStruct && vv.inSentence {
		vv.inSentence = false
		vv.report.NumSentences++
		if vv.numInSent == 0 {
			return vv.addError(line, "empty sentence")
		}
		if vv.cols.Deprel > 0 && vv.rootsInSent != 1 {
			return vv.addError(line, fmt.Sprintf(
				"expected exactly one root token, found %d", vv.rootsInSent))
		}
	}
	return nil
}

// Run validates a single vertical file. The returned report is always
// usable, even if the parsing stopped early.
func (vv *VertValidator) Run(conf *vertigo.ParserConf) *Report {
	vv.report.File = conf.InputFilePath
	log.Info().Str("vertical", conf.InputFilePath).Msg("starting to validate the vertical file")
	err := vertigo.ParseVerticalFile(conf, vv)
	if err != nil && !errors.Is(err, ErrTooManyErrors) {
		vv.report.Errors = append(
			vv.report.Errors, fmt.Sprintf("failed to parse vertical file: %s", err))
	}
	for i := len(vv.openStructs) - 1; i >= 0; i-- {
		vv.report.Errors = append(vv.report.Errors, fmt.Sprintf(
			"missing closing tag for element `%s`", vv.openStructs[i]))
	}
	return vv.report
}
