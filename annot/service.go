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

package annot

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// ServiceAnnotator calls an external tagging/parsing service
// (e.g. a UDPipe-like REST endpoint) to annotate English text.
type ServiceAnnotator struct {
	url    string
	client *http.Client
}

// NewServiceAnnotator creates an annotator client for the provided
// endpoint URL.
func NewServiceAnnotator(url string) *ServiceAnnotator {
	return &ServiceAnnotator{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type annotateRequest struct {
	Text string `json:"text"`
}

// Annotate implements the Annotator interface. The service is expected
// to return a JSON object matching the Sentence structure (tokens with
// word/lemma/upos/tag/deprel/head plus optional entities).
func (sa *ServiceAnnotator) Annotate(text string) (*Sentence, error) {
	body, err := sonic.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}
	resp, err := sa.client.Post(sa.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to annotate text: service returned %s", resp.Status)
	}
	rawAns, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}
	var ans Sentence
	if err := sonic.Unmarshal(rawAns, &ans); err != nil {
		return nil, fmt.Errorf("failed to decode annotator response: %w", err)
	}
	for i := range ans.Tokens {
		ans.Tokens[i].Idx = i
		if ans.Tokens[i].UPos == "" {
			ans.Tokens[i].UPos = UPosFromPenn(ans.Tokens[i].Tag)
		}
	}
	return &ans, nil
}
