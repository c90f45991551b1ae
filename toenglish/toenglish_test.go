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
	"testing"

	"github.com/czcorpus/islgloss/frame"
	"github.com/czcorpus/islgloss/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestDetectSentenceType(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, frame.WhQuestion, DetectSentenceType("YOUR NAME WHAT?", lx))
	assert.Equal(t, frame.WhQuestion, DetectSentenceType("WHERE YOU LIVE", lx))
	assert.Equal(t, frame.YesNoQuestion, DetectSentenceType("YOU BUSY?", lx))
	assert.Equal(t, frame.YesNoQuestion, DetectSentenceType("YOU HELP ME CAN", lx))
	assert.Equal(t, frame.Imperative, DetectSentenceType("HELP ME PLEASE", lx))
	assert.Equal(t, frame.Imperative, DetectSentenceType("SIT", lx))
	assert.Equal(t, frame.Declarative, DetectSentenceType("I FEVER HAVE", lx))
}

func TestTokenListClaims(t *testing.T) {
	tl := newTokenList([]string{"YOU", "CALL", "DOCTOR", "CAN"})
	assert.True(t, tl.Claim("CAN"))
	assert.False(t, tl.Claim("CAN"))
	assert.Equal(t, 1, tl.Pos("CALL"))
	assert.Equal(t, 2, tl.Pos("DOCTOR"))
	assert.True(t, tl.ClaimPair("CALL", "DOCTOR"))
	assert.Equal(t, []string{"YOU"}, tl.Rest())
}

func TestTokenListClaimPairSkipsClaimed(t *testing.T) {
	tl := newTokenList([]string{"FAN", "NOT", "ON"})
	tl.Claim("NOT")
	assert.True(t, tl.ClaimPair("FAN", "ON"))
	assert.Equal(t, 0, tl.Len())
}

func TestInflector(t *testing.T) {
	inf := TableInflector{}
	assert.Equal(t, "went", inf.Inflect("go", Past, Singular))
	assert.Equal(t, "ate", inf.Inflect("eat", Past, Singular))
	assert.Equal(t, "lived", inf.Inflect("live", Past, Singular))
	assert.Equal(t, "played", inf.Inflect("play", Past, Plural))
	assert.Equal(t, "will come", inf.Inflect("come", Future, Singular))
	assert.Equal(t, "dances", inf.Inflect("dance", Present, Singular))
	assert.Equal(t, "go", inf.Inflect("go", Present, Singular))
	assert.Equal(t, "dance", inf.Inflect("dance", Present, Plural))
}

func TestPatternProperName(t *testing.T) {
	lx := lexicon.Default()
	inf := TableInflector{}
	ans, ok := MatchPattern("I KRUPANKA", lx, inf)
	assert.True(t, ok)
	assert.Equal(t, "I am Krupanka.", ans)
	_, ok = MatchPattern("I HUNGRY", lx, inf)
	assert.False(t, ok)
}

func TestPatternPastTense(t *testing.T) {
	lx := lexicon.Default()
	inf := TableInflector{}
	ans, ok := MatchPattern("YESTERDAY I GO", lx, inf)
	assert.True(t, ok)
	assert.Equal(t, "Yesterday, I went.", ans)
	ans, ok = MatchPattern("YESTERDAY I PLAY", lx, inf)
	assert.True(t, ok)
	assert.Equal(t, "Yesterday, I played.", ans)
}

func TestPatternFutureTense(t *testing.T) {
	lx := lexicon.Default()
	ans, ok := MatchPattern("TOMORROW I SLEEP", lx, TableInflector{})
	assert.True(t, ok)
	assert.Equal(t, "Tomorrow, I will sleep.", ans)
	ans, ok = MatchPattern("TOMORROW I GO SCHOOL", lx, TableInflector{})
	assert.True(t, ok)
	assert.Equal(t, "Tomorrow, I will go to school.", ans)
}

func TestPatternQuestions(t *testing.T) {
	lx := lexicon.Default()
	inf := TableInflector{}
	ans, ok := MatchPattern("WHAT YOUR AGE", lx, inf)
	assert.True(t, ok)
	assert.Equal(t, "What is your age?", ans)
	ans, ok = MatchPattern("WHERE YOU STAY", lx, inf)
	assert.True(t, ok)
	assert.Equal(t, "Where do you stay?", ans)
	ans, ok = MatchPattern("YOUR PEN WHERE", lx, inf)
	assert.True(t, ok)
	assert.Equal(t, "Where is your pen?", ans)
}

func TestPatternPersonAdjective(t *testing.T) {
	lx := lexicon.Default()
	ans, ok := MatchPattern("KRUPANKA HAPPY", lx, TableInflector{})
	assert.True(t, ok)
	assert.Equal(t, "Krupanka is happy.", ans)
	ans, ok = MatchPattern("YOU HAPPY", lx, TableInflector{})
	assert.True(t, ok)
	assert.Equal(t, "You are happy.", ans)
}

func TestPatternStranger(t *testing.T) {
	lx := lexicon.Default()
	ans, ok := MatchPattern("STRANGER OFFICE IN", lx, TableInflector{})
	assert.True(t, ok)
	assert.Equal(t, "There is a stranger in the office.", ans)
}

func TestPipelineSpecialVerbHave(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, "I have a fever.", FromGloss("I FEVER HAVE", lx, TableInflector{}))
}

func TestPipelineNegatedVerb(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, "I do not go.", FromGloss("I GO NOT", lx, TableInflector{}))
}

func TestPipelineFeelWithBareObject(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, "I do not feel well.", FromGloss("I WELL FEEL NOT", lx, TableInflector{}))
}

func TestPipelineAdjectiveWinsOverFeel(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, "I am hot.", FromGloss("I HOT FEEL", lx, TableInflector{}))
}

func TestPipelineModalQuestion(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, "Can you call a doctor?", FromGloss("YOU CALL DOCTOR CAN?", lx, TableInflector{}))
	assert.Equal(t, "Can you take me to a doctor?", FromGloss("YOU TAKE ME DOCTOR CAN?", lx, TableInflector{}))
}

func TestPipelineYesNoAdjective(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, "Are you busy?", FromGloss("YOU BUSY?", lx, TableInflector{}))
}

func TestPipelineWhQuestion(t *testing.T) {
	lx := lexicon.Default()
	assert.Equal(t, "What does he eat?", FromGloss("HE EAT WHAT?", lx, TableInflector{}))
}

func TestExtractClaimsEachTokenOnce(t *testing.T) {
	lx := lexicon.Default()
	comps := Extract("YESTERDAY I SCHOOL GO", frame.Declarative, lx)
	assert.Equal(t, "YESTERDAY", comps.TimeExp)
	assert.Equal(t, "I", comps.Subject)
	assert.Equal(t, "SCHOOL", comps.Object)
	assert.Equal(t, "GO", comps.Verb)
}

func TestExtractFingerSpelledName(t *testing.T) {
	lx := lexicon.Default()
	comps := Extract("F-A-R-A-A-N HAPPY", frame.Declarative, lx)
	assert.Equal(t, "Faraan", comps.Subject)
}

func TestFallbackShapes(t *testing.T) {
	lx := lexicon.Default()
	inf := TableInflector{}
	assert.Equal(t, "Sit.", Fallback("SIT", lx, inf))
	assert.Equal(t, "It is banana.", Fallback("BANANA", lx, inf))
	assert.Equal(t, "She dances.", Fallback("SHE DANCE", lx, inf))
	assert.Equal(t, "I dance.", Fallback("I DANCE", lx, inf))
	assert.Equal(t, "You are tired.", Fallback("YOU TIRED", lx, inf))
	assert.Equal(t, "Unable to translate: A B C D", Fallback("A B C D", lx, inf))
}
