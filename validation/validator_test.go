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
	"os"
	"path/filepath"
	"testing"

	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/cnf"
	"github.com/stretchr/testify/assert"
)

func writeVertical(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.vert")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func validate(t *testing.T, content string) *Report {
	t.Helper()
	path := writeVertical(t, content)
	conf := cnf.VerticalConf{
		Encoding: cnf.DfltEncoding,
		Columns:  annot.DefaultVerticalColumns(),
	}
	reports := ValidateFiles(context.Background(), conf, []string{path}, 0)
	assert.Equal(t, 1, len(reports))
	return reports[0]
}

func TestValidVertical(t *testing.T) {
	rep := validate(t, "<s>\n"+
		"He\the\tPRON\tPRP\tnsubj\t2\n"+
		"sleeps\tsleep\tVERB\tVBZ\troot\t0\n"+
		"</s>\n")
	assert.True(t, rep.IsValid())
	assert.Equal(t, 1, rep.NumSentences)
	assert.Equal(t, 2, rep.NumTokens)
}

func TestMissingColumns(t *testing.T) {
	rep := validate(t, "<s>\n"+
		"He\the\n"+
		"sleeps\tsleep\tVERB\tVBZ\troot\t0\n"+
		"</s>\n")
	assert.False(t, rep.IsValid())
	assert.Contains(t, rep.Errors[0], "positional attributes")
}

func TestBadHeadReference(t *testing.T) {
	rep := validate(t, "<s>\n"+
		"He\the\tPRON\tPRP\tnsubj\txx\n"+
		"sleeps\tsleep\tVERB\tVBZ\troot\t0\n"+
		"</s>\n")
	assert.False(t, rep.IsValid())
	assert.Contains(t, rep.Errors[0], "head reference")
}

func TestMissingRoot(t *testing.T) {
	rep := validate(t, "<s>\n"+
		"He\the\tPRON\tPRP\tnsubj\t2\n"+
		"sleeps\tsleep\tVERB\tVBZ\tnsubj\t0\n"+
		"</s>\n")
	assert.False(t, rep.IsValid())
	assert.Contains(t, rep.Errors[0], "exactly one root")
}

func TestUnclosedStructure(t *testing.T) {
	rep := validate(t, "<s>\n"+
		"He\the\tPRON\tPRP\tnsubj\t2\n"+
		"sleeps\tsleep\tVERB\tVBZ\troot\t0\n")
	assert.False(t, rep.IsValid())
	assert.Contains(t, rep.Errors[len(rep.Errors)-1], "missing closing tag")
}
