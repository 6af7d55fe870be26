// Package mcpserver exposes the palette engine over the Model Context
// Protocol so agent clients can call it as tools.
package mcpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

type Config struct {
	Host string
	Port int
}

// Server wraps an MCP server with an SSE transport.
type Server struct {
	config    Config
	server    *server.MCPServer
	sseServer *server.SSEServer
}

func NewServer(config Config) *Server {
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Port == 0 {
		config.Port = 8081
	}

	mcpServer := server.NewMCPServer(
		"palette-lab",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s := &Server{
		config: config,
		server: mcpServer,
	}
	s.registerTools()

	return s
}

// Start runs the SSE transport in the background.
func (s *Server) Start() {
	baseURL := fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
	s.sseServer = server.NewSSEServer(
		s.server,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	log.Printf("Starting MCP server on %s", addr)

	go func() {
		if err := s.sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Printf("MCP server error: %v", err)
		}
	}()
}

// Stop shuts the SSE transport down.
func (s *Server) Stop(ctx context.Context) error {
	if s.sseServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.sseServer.Shutdown(shutdownCtx)
}
