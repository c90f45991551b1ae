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

// Package api exposes the translator as a JSON REST API.
//
// Endpoints:
//
//	POST /api/isl       body: {"sentence":"..."}  ->  {"islGloss":"..."}
//	POST /api/english   body: {"islGloss":"..."}  ->  {"sentence":"..."}
//	GET  /health
package api

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/islgloss/translator"
	"github.com/rs/zerolog/log"
)

type translateRequest struct {
	Sentence string `json:"sentence"`
	ISLGloss string `json:"islGloss"`
}

type glossResponse struct {
	ISLGloss string `json:"islGloss"`
}

type sentenceResponse struct {
	Sentence string `json:"sentence"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode a response")
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write a response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*translateRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return nil, false
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}
	var req translateRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "body must be a JSON object")
		return nil, false
	}
	return &req, true
}

func handleToGloss(tr *translator.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}
		if req.Sentence == "" {
			writeError(w, http.StatusBadRequest, "no sentence provided")
			return
		}
		writeJSON(w, http.StatusOK, glossResponse{ISLGloss: tr.ToGloss(req.Sentence)})
	}
}

func handleToEnglish(tr *translator.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}
		if req.ISLGloss == "" {
			writeError(w, http.StatusBadRequest, "no islGloss provided")
			return
		}
		writeJSON(w, http.StatusOK, sentenceResponse{Sentence: tr.ToEnglish(req.ISLGloss)})
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
