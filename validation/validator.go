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

package validation

import (
	"context"

	"github.com/czcorpus/islgloss/cnf"
	"github.com/tomachalek/vertigo/v5"
)

// DfltMaxNumErrors limits how many problems are collected per file
// before validation of the file gives up.
const DfltMaxNumErrors = 50

// ValidateFiles validates the provided vertical files one by one and
// returns a report for each of them.
func ValidateFiles(
	ctx context.Context,
	conf cnf.VerticalConf,
	files []string,
	maxNumErrors int,
) []*Report {
	if maxNumErrors <= 0 {
		maxNumErrors = DfltMaxNumErrors
	}
	ans := make([]*Report, 0, len(files))
	for _, file := range files {
		parserConf := &vertigo.ParserConf{
			InputFilePath:         file,
			StructAttrAccumulator: "nil",
			Encoding:              conf.Encoding,
		}
		vv := NewVertValidator(ctx, conf.Columns, "s", maxNumErrors)
		ans = append(ans, vv.Run(parserConf))
		if ctx.Err() != nil {
			break
		}
	}
	return ans
}
