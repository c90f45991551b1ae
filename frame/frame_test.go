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

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuestion(t *testing.T) {
	assert.True(t, YesNoQuestion.IsQuestion())
	assert.True(t, WhQuestion.IsQuestion())
	assert.False(t, Declarative.IsQuestion())
	assert.False(t, Imperative.IsQuestion())
}

func TestConstructionKindString(t *testing.T) {
	assert.Equal(t, "regular", KindRegular.String())
	assert.Equal(t, "copula", KindCopula.String())
	assert.Equal(t, "feel", KindFeel.String())
	assert.Equal(t, "want-need", KindWantNeed.String())
	assert.Equal(t, "phrasal", KindPhrasal.String())
}
