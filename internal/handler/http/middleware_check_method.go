// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/lookup-gateway/internal/utils"
)

// notFoundMessage is the JSON string body of every 404 produced by the router.
const notFoundMessage = "not found"

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches but the method does not. The gateway
// answers 404 instead, so an unsupported method looks the same as an
// unknown route. Requests whose method IS registered for the exact route
// pattern are forwarded to router.ServeHTTP.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded during this check.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		notFound(w, r)
	}
}

// notFound writes a 404 with the same JSON string body shape as failure
// envelopes.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, notFoundMessage, http.StatusNotFound)
}
