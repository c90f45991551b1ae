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

package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoadsEmbeddedResources(t *testing.T) {
	lx := Default()
	assert.True(t, len(lx.TimeWords) > 0)
	assert.True(t, len(lx.WhWords) > 0)
	assert.True(t, lx.ToGloss.Size() > 0)
	assert.True(t, lx.ToEnglish.Size() > 0)
	assert.True(t, len(lx.Corrections) > 0)
	assert.True(t, len(lx.MWEs) > 0)
}

func TestOverrideTablesAreNotInverses(t *testing.T) {
	lx := Default()
	out, ok := lx.ToGloss.Lookup("i am not comfortable as there is a stranger in the house")
	assert.True(t, ok)
	assert.Equal(t, "STRANGER HOUSE IN, I COMFORTABLE NOT", out)
	back, ok := lx.ToEnglish.Lookup("STRANGER HOUSE IN, I COMFORTABLE NOT")
	assert.True(t, ok)
	assert.Equal(t, "I am not comfortable.", back)
}

func TestOverrideTableLaterAdditionWins(t *testing.T) {
	tbl := NewOverrideTable()
	tbl.Add("thank you", "THANKYOU")
	tbl.Add("thank you", "THANK-YOU")
	out, ok := tbl.Lookup("thank you")
	assert.True(t, ok)
	assert.Equal(t, "THANK-YOU", out)
	assert.Equal(t, 1, tbl.Size())
}

func TestTimeWordMembershipIsCaseInsensitive(t *testing.T) {
	lx := Default()
	assert.True(t, lx.IsTimeWord("Yesterday"))
	assert.True(t, lx.IsTimeWord("tomorrow"))
	assert.False(t, lx.IsTimeWord("banana"))
}

func TestClosedClassMembership(t *testing.T) {
	lx := Default()
	assert.True(t, lx.IsAdjective("hungry"))
	assert.True(t, lx.IsAdjective("DANGER"))
	assert.False(t, lx.IsAdjective("SCHOOL"))
	assert.True(t, lx.IsModal("CAN"))
	assert.True(t, lx.IsSpecialVerb("feel"))
	assert.True(t, lx.IsBeVerb("am"))
	assert.True(t, lx.IsAuxiliaryVerb("DID"))
	assert.True(t, lx.IsPlaceNoun("market"))
	assert.True(t, lx.IsPossessive("MY"))
	assert.False(t, lx.IsPossessive("ME"))
}

func TestSpecialVerbsKeepPriorityOrder(t *testing.T) {
	assert.Equal(t, []string{"FEEL", "HAVE", "WANT", "NEED"}, SpecialVerbs())
}

func TestMWETarget(t *testing.T) {
	lx := Default()
	tgt, ok := lx.MWETarget("SWITCH-ON")
	assert.True(t, ok)
	assert.Equal(t, "turn on", tgt)
	_, ok = lx.MWETarget("UNKNOWN PHRASE")
	assert.False(t, ok)
}

func TestApplyCorrections(t *testing.T) {
	lx := Default()
	gloss, ok := lx.ApplyCorrections("tell me your name, age and from which place you come")
	assert.True(t, ok)
	assert.Equal(t, "YOUR NAME WHAT? AGE WHAT? COME FROM WHERE?", gloss)
	_, ok = lx.ApplyCorrections("nothing matches here")
	assert.False(t, ok)
}

func TestLoadMissingConfiguredFileYieldsEmptyList(t *testing.T) {
	lx := Load(Paths{TimeWords: "/nonexistent/words.txt"}, nil)
	assert.Equal(t, 0, len(lx.TimeWords))
	assert.True(t, len(lx.WhWords) > 0)
}
