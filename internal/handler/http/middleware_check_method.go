// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/connector-sync/internal/utils"
)

// allowOrder is the order of methods in the Allow header.
var allowOrder = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// routeMethods is one walked route pattern split into path segments, with
// the methods registered for it.
type routeMethods struct {
	segments []string
	methods  map[string]struct{}
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with a JSON error and an Allow header listing the methods the matched
// path does accept.
//
// The route table is walked once, on the first 405, so the handler must be
// installed after every route is registered.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	var (
		once   sync.Once
		routes []routeMethods
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			routes = walkRoutes(router)
		})

		w.Header().Set("Allow", strings.Join(allowedMethods(routes, r.URL.Path), ", "))
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func walkRoutes(router chi.Routes) []routeMethods {
	byPattern := make(map[string]*routeMethods)
	var ordered []string

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		rm, ok := byPattern[route]
		if !ok {
			rm = &routeMethods{segments: splitPath(route), methods: make(map[string]struct{})}
			byPattern[route] = rm
			ordered = append(ordered, route)
		}
		rm.methods[method] = struct{}{}
		return nil
	})

	routes := make([]routeMethods, 0, len(ordered))
	for _, pattern := range ordered {
		routes = append(routes, *byPattern[pattern])
	}
	return routes
}

// allowedMethods unions the methods of every route pattern matching path.
func allowedMethods(routes []routeMethods, path string) []string {
	segments := splitPath(path)
	found := make(map[string]struct{})
	for _, rm := range routes {
		if !matchSegments(rm.segments, segments) {
			continue
		}
		for m := range rm.methods {
			found[m] = struct{}{}
		}
	}

	allowed := make([]string, 0, len(found))
	for _, m := range allowOrder {
		if _, ok := found[m]; ok {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

// matchSegments matches a chi pattern against a request path. A "{param}"
// segment matches any one non-empty segment, a trailing "*" the rest.
func matchSegments(pattern, path []string) bool {
	for i, seg := range pattern {
		if seg == "*" {
			return true
		}
		if i >= len(path) {
			return false
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			continue
		}
		if seg != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
