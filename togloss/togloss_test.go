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

package togloss

import (
	"testing"

	"github.com/czcorpus/islgloss/annot"
	"github.com/czcorpus/islgloss/frame"
	"github.com/czcorpus/islgloss/lexicon"
	"github.com/stretchr/testify/assert"
)

// tk builds one annotated token; head is the index of the syntactic
// head within the sentence.
func tk(text, lemma, upos, tag, dep string, head int) annot.Token {
	return annot.Token{Text: text, Lemma: lemma, UPos: upos, Tag: tag, Dep: dep, Head: head}
}

func sentence(tokens ...annot.Token) *annot.Sentence {
	for i := range tokens {
		tokens[i].Idx = i
	}
	return &annot.Sentence{Tokens: tokens}
}

func TestClassifyWhQuestion(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("What", "what", "PRON", "WP", "attr", 1),
		tk("is", "be", "AUX", "VBZ", "ROOT", 1),
		tk("your", "your", "PRON", "PRP$", "poss", 3),
		tk("name", "name", "NOUN", "NN", "nsubj", 1),
		tk("?", "?", "PUNCT", ".", "punct", 1),
	)
	assert.Equal(t, frame.WhQuestion, Classify(s, lx))
}

func TestClassifyYesNoQuestion(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Are", "be", "AUX", "VBP", "ROOT", 0),
		tk("you", "you", "PRON", "PRP", "nsubj", 0),
		tk("busy", "busy", "ADJ", "JJ", "acomp", 0),
		tk("?", "?", "PUNCT", ".", "punct", 0),
	)
	assert.Equal(t, frame.YesNoQuestion, Classify(s, lx))
}

func TestClassifyImperative(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Sit", "sit", "VERB", "VB", "ROOT", 0),
		tk("down", "down", "ADP", "RP", "prt", 0),
	)
	assert.Equal(t, frame.Imperative, Classify(s, lx))
}

func TestClassifyDeclarative(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("She", "she", "PRON", "PRP", "nsubj", 3),
		tk("is", "be", "AUX", "VBZ", "aux", 3),
		tk("not", "not", "PART", "RB", "neg", 3),
		tk("going", "go", "VERB", "VBG", "ROOT", 3),
	)
	assert.Equal(t, frame.Declarative, Classify(s, lx))
}

func TestPastDeclarativeKeepsSOVOrder(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Yesterday", "yesterday", "NOUN", "NN", "npadvmod", 2),
		tk("I", "I", "PRON", "PRP", "nsubj", 2),
		tk("went", "go", "VERB", "VBD", "ROOT", 2),
		tk("to", "to", "ADP", "IN", "prep", 2),
		tk("school", "school", "NOUN", "NN", "pobj", 3),
	)
	assert.Equal(t, "YESTERDAY I SCHOOL GO", FromSentence(s, lx))
}

func TestNegatedCopula(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("She", "she", "PRON", "PRP", "nsubj", 1),
		tk("is", "be", "AUX", "VBZ", "ROOT", 1),
		tk("not", "not", "PART", "RB", "neg", 1),
		tk("happy", "happy", "ADJ", "JJ", "acomp", 1),
	)
	assert.Equal(t, "SHE HAPPY NOT", FromSentence(s, lx))
}

func TestCopulaProperNameComplement(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("I", "I", "PRON", "PRP", "nsubj", 1),
		tk("am", "be", "AUX", "VBP", "ROOT", 1),
		tk("Faraan", "Faraan", "PROPN", "NNP", "attr", 1),
	)
	assert.Equal(t, "I FARAAN", FromSentence(s, lx))
}

func TestDummySubjectIsDropped(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("It", "it", "PRON", "PRP", "nsubj", 1),
		tk("is", "be", "AUX", "VBZ", "ROOT", 1),
		tk("an", "an", "DET", "DT", "det", 3),
		tk("emergency", "emergency", "NOUN", "NN", "attr", 1),
	)
	assert.Equal(t, "EMERGENCY", FromSentence(s, lx))
}

func TestFeelConstruction(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("I", "I", "PRON", "PRP", "nsubj", 1),
		tk("feel", "feel", "VERB", "VBP", "ROOT", 1),
		tk("hot", "hot", "ADJ", "JJ", "acomp", 1),
	)
	assert.Equal(t, "I HOT FEEL", FromSentence(s, lx))
}

func TestFeelThirstyOmitsFeelSign(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("I", "I", "PRON", "PRP", "nsubj", 2),
		tk("am", "be", "AUX", "VBP", "aux", 2),
		tk("feeling", "feel", "VERB", "VBG", "ROOT", 2),
		tk("thirsty", "thirsty", "ADJ", "JJ", "acomp", 2),
	)
	assert.Equal(t, "I THIRSTY", FromSentence(s, lx))
}

func TestWantWithInfinitive(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("I", "I", "PRON", "PRP", "nsubj", 1),
		tk("want", "want", "VERB", "VBP", "ROOT", 1),
		tk("to", "to", "PART", "TO", "aux", 3),
		tk("eat", "eat", "VERB", "VB", "xcomp", 1),
	)
	assert.Equal(t, "I WANT EAT", FromSentence(s, lx))
}

func TestWantWithDestination(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("I", "I", "PRON", "PRP", "nsubj", 1),
		tk("want", "want", "VERB", "VBP", "ROOT", 1),
		tk("to", "to", "PART", "TO", "aux", 3),
		tk("go", "go", "VERB", "VB", "xcomp", 1),
		tk("to", "to", "ADP", "IN", "prep", 3),
		tk("toilet", "toilet", "NOUN", "NN", "pobj", 4),
	)
	assert.Equal(t, "I TOILET GO WANT", FromSentence(s, lx))
}

func TestWantTakeRestCollapses(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("I", "I", "PRON", "PRP", "nsubj", 1),
		tk("want", "want", "VERB", "VBP", "ROOT", 1),
		tk("to", "to", "PART", "TO", "aux", 3),
		tk("take", "take", "VERB", "VB", "xcomp", 1),
		tk("rest", "rest", "NOUN", "NN", "dobj", 3),
	)
	assert.Equal(t, "I WANT REST", FromSentence(s, lx))
}

func TestYesNoQuestionWithModal(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Can", "can", "AUX", "MD", "aux", 2),
		tk("you", "you", "PRON", "PRP", "nsubj", 2),
		tk("call", "call", "VERB", "VB", "ROOT", 2),
		tk("a", "a", "DET", "DT", "det", 4),
		tk("doctor", "doctor", "NOUN", "NN", "dobj", 2),
		tk("?", "?", "PUNCT", ".", "punct", 2),
	)
	assert.Equal(t, "YOU CALL DOCTOR CAN?", FromSentence(s, lx))
}

func TestPhrasalSwitchOn(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Can", "can", "AUX", "MD", "aux", 2),
		tk("you", "you", "PRON", "PRP", "nsubj", 2),
		tk("switch", "switch", "VERB", "VB", "ROOT", 2),
		tk("on", "on", "ADP", "RP", "prt", 2),
		tk("the", "the", "DET", "DT", "det", 5),
		tk("fan", "fan", "NOUN", "NN", "dobj", 2),
		tk("?", "?", "PUNCT", ".", "punct", 2),
	)
	assert.Equal(t, "YOU FAN ON CAN?", FromSentence(s, lx))
}

func TestWhQuestionWithPossessive(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("What", "what", "PRON", "WP", "attr", 1),
		tk("is", "be", "AUX", "VBZ", "ROOT", 1),
		tk("your", "your", "PRON", "PRP$", "poss", 3),
		tk("name", "name", "NOUN", "NN", "nsubj", 1),
		tk("?", "?", "PUNCT", ".", "punct", 1),
	)
	assert.Equal(t, "YOUR NAME WHAT?", FromSentence(s, lx))
}

func TestImperativeWithPoliteness(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Please", "please", "INTJ", "UH", "intj", 1),
		tk("help", "help", "VERB", "VB", "ROOT", 1),
		tk("me", "I", "PRON", "PRP", "dobj", 1),
	)
	assert.Equal(t, "HELP ME PLEASE", FromSentence(s, lx))
}

func TestImperativeDropsDownParticle(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Sit", "sit", "VERB", "VB", "ROOT", 0),
		tk("down", "down", "ADP", "RP", "prt", 0),
	)
	assert.Equal(t, "SIT", FromSentence(s, lx))
}

func TestStrangerClausePrepended(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("I", "I", "PRON", "PRP", "nsubj", 3),
		tk("am", "be", "AUX", "VBP", "aux", 3),
		tk("not", "not", "PART", "RB", "neg", 3),
		tk("comfortable", "comfortable", "ADJ", "JJ", "ROOT", 3),
		tk("as", "as", "SCONJ", "IN", "mark", 7),
		tk("a", "a", "DET", "DT", "det", 6),
		tk("stranger", "stranger", "NOUN", "NN", "nsubj", 7),
		tk("is", "be", "AUX", "VBZ", "advcl", 3),
		tk("in", "in", "ADP", "IN", "prep", 7),
		tk("the", "the", "DET", "DT", "det", 10),
		tk("house", "house", "NOUN", "NN", "pobj", 8),
	)
	out := FromSentence(s, lx)
	assert.Contains(t, out, "STRANGER HOUSE IN,")
	assert.Contains(t, out, "NOT")
}

func TestFingerSpell(t *testing.T) {
	assert.Equal(t, "F A R A A N", FingerSpell("Faraan"))
}

func TestClassifyImperativeFromFeatures(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		annot.Token{Text: "Sit", Lemma: "sit", UPos: "VERB", Dep: "ROOT",
			Feats: annot.FeatList{{"Mood", "Imp"}}},
		annot.Token{Text: "down", Lemma: "down", UPos: "ADP", Dep: "prt"},
	)
	assert.Equal(t, frame.Imperative, Classify(s, lx))
}

func TestClassifyWhQuestionFromFeatures(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		annot.Token{Text: "Whatever", Lemma: "whatever", UPos: "PRON", Dep: "nsubj", Head: 1,
			Feats: annot.FeatList{{"PronType", "Int"}}},
		annot.Token{Text: "happened", Lemma: "happen", UPos: "VERB", Dep: "ROOT", Head: 1},
		annot.Token{Text: "?", Lemma: "?", UPos: "PUNCT", Dep: "punct", Head: 1},
	)
	assert.Equal(t, frame.WhQuestion, Classify(s, lx))

	s.Tokens[0].Feats = nil
	assert.Equal(t, frame.YesNoQuestion, Classify(s, lx))
}

func TestExtractPossessiveKeepsEntityTogether(t *testing.T) {
	lx := lexicon.Default()
	s := sentence(
		tk("Call", "call", "VERB", "VB", "ROOT", 0),
		tk("my", "my", "PRON", "PRP$", "poss", 3),
		tk("Rahul", "rahul", "PROPN", "NNP", "compound", 3),
		tk("Kumar", "kumar", "PROPN", "NNP", "dobj", 0),
	)
	comps := Extract(s, lx)
	assert.Equal(t, "my Kumar", comps.Possessive)

	s.Entities = []annot.Entity{{Text: "Rahul Kumar", Label: "PERSON", Start: 2, End: 4}}
	comps = Extract(s, lx)
	assert.Equal(t, "my Rahul Kumar", comps.Possessive)
}
