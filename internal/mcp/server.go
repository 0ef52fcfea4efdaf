// Package mcp exposes the catalog and team operations as Model Context Protocol tools.
package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"pokedex-service/internal/logging"
)

const serverName = "pokedex-service"

// NewServer registers every tool against the given services.
func NewServer(pokemon PokemonService, teams TeamService, logger *slog.Logger, version string) *mcpsdk.Server {
	if version == "" {
		version = "dev"
	}
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: serverName, Version: version}, nil)

	addTool(server, GetPokemonTool(), GetPokemonHandler(pokemon), logger)
	addTool(server, ComparePokemonTool(), ComparePokemonHandler(pokemon), logger)
	addTool(server, TrainerPokemonTool(), TrainerPokemonHandler(pokemon), logger)
	addTool(server, RegionPokemonTool(), RegionPokemonHandler(pokemon), logger)
	addTool(server, GetTeamTool(), GetTeamHandler(teams), logger)
	addTool(server, AddToTeamTool(), AddToTeamHandler(teams), logger)
	addTool(server, RemoveFromTeamTool(), RemoveFromTeamHandler(teams), logger)

	return server
}

// NewHandler serves server over streamable HTTP.
func NewHandler(server *mcpsdk.Server) http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return server
	}, nil)
}

func addTool[In, Out any](server *mcpsdk.Server, tool *mcpsdk.Tool, handler mcpsdk.ToolHandlerFor[In, Out], logger *slog.Logger) {
	mcpsdk.AddTool(server, tool, withLogging(tool.Name, handler, logger))
}

func withLogging[In, Out any](name string, next mcpsdk.ToolHandlerFor[In, Out], logger *slog.Logger) mcpsdk.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input In) (*mcpsdk.CallToolResult, Out, error) {
		start := time.Now()
		result, out, err := next(ctx, req, input)
		log := logging.FromContext(ctx, logger)
		if err != nil {
			logging.Debug(log, "mcp tool failed",
				slog.String("tool", name),
				slog.Duration("duration", time.Since(start)),
				slog.Any("err", err),
			)
			return result, out, err
		}
		logging.Debug(log, "mcp tool call",
			slog.String("tool", name),
			slog.Duration("duration", time.Since(start)),
		)
		return result, out, err
	}
}
