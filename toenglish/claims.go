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

// tokenList is a gloss token sequence with claim tracking. Extraction
// rules claim tokens instead of mutating the sequence; a claimed token
// is invisible to all later rules.
type tokenList struct {
	toks    []string
	claimed []bool
}

func newTokenList(toks []string) *tokenList {
	return &tokenList{toks: toks, claimed: make([]bool, len(toks))}
}

// Rest returns the unclaimed tokens in their original order.
func (tl *tokenList) Rest() []string {
	var ans []string
	for i, t := range tl.toks {
		if !tl.claimed[i] {
			ans = append(ans, t)
		}
	}
	return ans
}

// Len returns the number of unclaimed tokens.
func (tl *tokenList) Len() int {
	ans := 0
	for _, c := range tl.claimed {
		if !c {
			ans++
		}
	}
	return ans
}

// Contains tests whether an unclaimed token equals w.
func (tl *tokenList) Contains(w string) bool {
	for i, t := range tl.toks {
		if !tl.claimed[i] && t == w {
			return true
		}
	}
	return false
}

// Claim marks the first unclaimed occurrence of w as consumed and
// reports whether there was one.
func (tl *tokenList) Claim(w string) bool {
	for i, t := range tl.toks {
		if !tl.claimed[i] && t == w {
			tl.claimed[i] = true
			return true
		}
	}
	return false
}

// Pos returns the position of the first unclaimed occurrence of w
// among the unclaimed tokens, or -1.
func (tl *tokenList) Pos(w string) int {
	pos := 0
	for i, t := range tl.toks {
		if tl.claimed[i] {
			continue
		}
		if t == w {
			return pos
		}
		pos++
	}
	return -1
}

// ClaimPair claims two adjacent (in unclaimed order) tokens forming
// the provided pair and reports success.
func (tl *tokenList) ClaimPair(first, second string) bool {
	prev := -1
	for i, t := range tl.toks {
		if tl.claimed[i] {
			continue
		}
		if prev >= 0 && tl.toks[prev] == first && t == second {
			tl.claimed[prev] = true
			tl.claimed[i] = true
			return true
		}
		prev = i
	}
	return false
}

// ClaimAll marks every remaining token as consumed and returns them.
func (tl *tokenList) ClaimAll() []string {
	ans := tl.Rest()
	for i := range tl.claimed {
		tl.claimed[i] = true
	}
	return ans
}

// ClaimFirst claims and returns the first unclaimed token.
func (tl *tokenList) ClaimFirst() (string, bool) {
	for i, t := range tl.toks {
		if !tl.claimed[i] {
			tl.claimed[i] = true
			return t, true
		}
	}
	return "", false
}
