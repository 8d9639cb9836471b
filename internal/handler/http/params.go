// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	paramStateID    = "stateId"
	paramDistrictID = "districtId"
)

// pathID reads the named chi URL parameter as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathID, name, raw)
	}

	return id, nil
}
