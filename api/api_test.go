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

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/islgloss/lexicon"
	"github.com/czcorpus/islgloss/translator"
	"github.com/stretchr/testify/assert"
)

func testHandler() http.Handler {
	tr := translator.New(lexicon.Default(), nil, nil)
	return NewHandler(tr, nil)
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestToGlossEndpoint(t *testing.T) {
	rec := postJSON(t, testHandler(), "/api/isl", `{"sentence": "The boy eats an apple."}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp glossResponse
	assert.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BOY APPLE EAT", resp.ISLGloss)
}

func TestToEnglishEndpoint(t *testing.T) {
	rec := postJSON(t, testHandler(), "/api/english", `{"islGloss": "I FEVER HAVE"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp sentenceResponse
	assert.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "I have a fever.", resp.Sentence)
}

func TestMissingSentence(t *testing.T) {
	rec := postJSON(t, testHandler(), "/api/isl", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	assert.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no sentence provided", resp.Error)
}

func TestInvalidBody(t *testing.T) {
	rec := postJSON(t, testHandler(), "/api/english", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/isl", nil)
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
