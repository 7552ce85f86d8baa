// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package server exposes the interactive upload flow over HTTP.
package server

import (
	"embed"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wraps the gin engine with the upload flow registered.
type Server struct {
	router *gin.Engine
}

func NewServer(handler *Handler, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.SetHTMLTemplate(template.Must(
		template.New("").Funcs(template.FuncMap{"join": strings.Join}).ParseFS(templateFS, "templates/*.html"),
	))
	handler.RegisterRoutes(router)

	return &Server{router: router}
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
