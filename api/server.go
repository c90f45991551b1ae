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
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/czcorpus/islgloss/cnf"
	"github.com/czcorpus/islgloss/translator"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// NewHandler builds the HTTP routing for the translation service.
// A nil or empty allowedOrigins permits any origin.
func NewHandler(tr *translator.Translator, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/isl", handleToGloss(tr))
	mux.HandleFunc("/api/english", handleToEnglish(tr))
	mux.HandleFunc("/health", handleHealth())

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// Serve runs the translation service until ctx is cancelled.
func Serve(ctx context.Context, conf cnf.ServerConf, tr *translator.Translator) error {
	srv := &http.Server{
		Addr:    conf.Address,
		Handler: NewHandler(tr, conf.AllowedOrigins),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("address", conf.Address).Msg("starting the translation service")
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down the translation service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)

	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
