// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"ueinspect/command"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the command surface as local JSON-over-HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := newSession()
			disp := command.NewDispatcher(sess)
			log.Printf("serving command surface on %s", addr)
			return http.ListenAndServe(addr, newRouter(disp))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8765", "address to listen on")
	return cmd
}

// newRouter exposes one POST route per command-table entry, each
// reading a JSON request body and writing a JSON response or
// ErrorResponse.
func newRouter(disp *command.Dispatcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/command", func(r chi.Router) {
		for _, name := range commandNames {
			name := name
			r.Post("/"+name, func(w http.ResponseWriter, req *http.Request) {
				body, err := io.ReadAll(req.Body)
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write(disp.Dispatch(name, body))
			})
		}
	})

	return r
}

var commandNames = []string{
	"listProcesses",
	"attach",
	"getVersion",
	"resolveNamePool",
	"resolveObjectArray",
	"resolveWorld",
	"showAnchors",
	"parseNames",
	"parseObjects",
	"listPackages",
	"listObjects",
	"details",
	"search",
	"findInstances",
	"inspectHierarchy",
	"inspectInstance",
	"expandArray",
}
