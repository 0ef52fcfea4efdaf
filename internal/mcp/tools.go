package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	apppokemon "pokedex-service/internal/app/pokemon"
	domainpokemon "pokedex-service/internal/domain/pokemon"
)

// PokemonService is the catalog surface the tools depend on.
type PokemonService interface {
	Lookup(ctx context.Context, nameOrID string) (domainpokemon.Pokemon, error)
	Compare(ctx context.Context, names []string) (domainpokemon.ComparisonResult, error)
	Trainer(ctx context.Context, name string) ([]domainpokemon.Pokemon, error)
	Region(ctx context.Context, name string, offset, limit int) ([]domainpokemon.Pokemon, error)
}

// TeamService is the team surface the tools depend on.
type TeamService interface {
	Team(ctx context.Context, userID string) (domainpokemon.TeamResponse, error)
	Add(ctx context.Context, userID, name string) (domainpokemon.TeamResponse, error)
	Remove(ctx context.Context, userID, name string) (domainpokemon.TeamResponse, error)
}

// PokemonLookupInput represents the MCP tool input for a single lookup.
type PokemonLookupInput struct {
	NameOrID string `json:"name_or_id" jsonschema:"Pokemon name or national dex number"`
}

// PokemonCompareInput represents the MCP tool input for a comparison.
type PokemonCompareInput struct {
	Names []string `json:"pokemon_names" jsonschema:"between 2 and 6 Pokemon names or ids"`
}

// TrainerInput represents the MCP tool input for a trainer roster.
type TrainerInput struct {
	Trainer string `json:"trainer_name" jsonschema:"trainer name such as ash or misty"`
}

// RegionInput represents the MCP tool input for a region page.
type RegionInput struct {
	Region string `json:"region_name" jsonschema:"region name such as kanto"`
	Offset int    `json:"offset,omitempty" jsonschema:"zero-based pokedex offset (default 0)"`
	Limit  *int   `json:"limit,omitempty" jsonschema:"page size (default 20, clamped to the server maximum)"`
}

// TeamInput represents the MCP tool input for reading a team.
type TeamInput struct {
	UserID string `json:"user_id" jsonschema:"team owner identifier"`
}

// TeamMemberInput represents the MCP tool input for adding or removing a member.
type TeamMemberInput struct {
	UserID      string `json:"user_id" jsonschema:"team owner identifier"`
	PokemonName string `json:"pokemon_name" jsonschema:"Pokemon name or id"`
}

// PokemonListResult wraps a list of records; tool output must be an object.
type PokemonListResult struct {
	Pokemon []domainpokemon.Pokemon `json:"pokemon" jsonschema:"hydrated Pokemon records in request order"`
}

// GetPokemonTool defines the MCP tool schema for a single lookup.
func GetPokemonTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_pokemon",
		Description: "Get a Pokemon by name or national dex number, including types, stats, abilities and flavor text",
	}
}

// ComparePokemonTool defines the MCP tool schema for comparisons.
func ComparePokemonTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "compare_pokemon",
		Description: "Compare 2 to 6 Pokemon by base stats, height, weight and type",
	}
}

// TrainerPokemonTool defines the MCP tool schema for trainer rosters.
func TrainerPokemonTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_trainer_pokemon",
		Description: "List the signature Pokemon of a known trainer",
	}
}

// RegionPokemonTool defines the MCP tool schema for region pages.
func RegionPokemonTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_region_pokemon",
		Description: "List a page of a region's pokedex in entry order",
	}
}

// GetTeamTool defines the MCP tool schema for reading a team.
func GetTeamTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_team",
		Description: "Get a user's team of up to 6 Pokemon",
	}
}

// AddToTeamTool defines the MCP tool schema for adding a team member.
func AddToTeamTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "add_to_team",
		Description: "Add a Pokemon to a user's team; teams hold at most 6 distinct Pokemon",
	}
}

// RemoveFromTeamTool defines the MCP tool schema for removing a team member.
func RemoveFromTeamTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "remove_from_team",
		Description: "Remove a Pokemon from a user's team by name",
	}
}

// GetPokemonHandler executes a single lookup.
func GetPokemonHandler(svc PokemonService) mcpsdk.ToolHandlerFor[PokemonLookupInput, domainpokemon.Pokemon] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, input PokemonLookupInput) (*mcpsdk.CallToolResult, domainpokemon.Pokemon, error) {
		record, err := svc.Lookup(ctx, input.NameOrID)
		if err != nil {
			return nil, domainpokemon.Pokemon{}, err
		}
		return nil, record, nil
	}
}

// ComparePokemonHandler executes a comparison.
func ComparePokemonHandler(svc PokemonService) mcpsdk.ToolHandlerFor[PokemonCompareInput, domainpokemon.ComparisonResult] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, input PokemonCompareInput) (*mcpsdk.CallToolResult, domainpokemon.ComparisonResult, error) {
		result, err := svc.Compare(ctx, input.Names)
		if err != nil {
			return nil, domainpokemon.ComparisonResult{}, err
		}
		return nil, result, nil
	}
}

// TrainerPokemonHandler executes a trainer roster lookup.
func TrainerPokemonHandler(svc PokemonService) mcpsdk.ToolHandlerFor[TrainerInput, PokemonListResult] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, input TrainerInput) (*mcpsdk.CallToolResult, PokemonListResult, error) {
		records, err := svc.Trainer(ctx, input.Trainer)
		if err != nil {
			return nil, PokemonListResult{}, err
		}
		return nil, PokemonListResult{Pokemon: records}, nil
	}
}

// RegionPokemonHandler executes a region page lookup.
func RegionPokemonHandler(svc PokemonService) mcpsdk.ToolHandlerFor[RegionInput, PokemonListResult] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, input RegionInput) (*mcpsdk.CallToolResult, PokemonListResult, error) {
		limit := apppokemon.DefaultRegionLimit
		if input.Limit != nil {
			limit = *input.Limit
		}
		records, err := svc.Region(ctx, input.Region, input.Offset, limit)
		if err != nil {
			return nil, PokemonListResult{}, err
		}
		return nil, PokemonListResult{Pokemon: records}, nil
	}
}

// GetTeamHandler reads a team.
func GetTeamHandler(svc TeamService) mcpsdk.ToolHandlerFor[TeamInput, domainpokemon.TeamResponse] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, input TeamInput) (*mcpsdk.CallToolResult, domainpokemon.TeamResponse, error) {
		team, err := svc.Team(ctx, input.UserID)
		if err != nil {
			return nil, domainpokemon.TeamResponse{}, err
		}
		return nil, team, nil
	}
}

// AddToTeamHandler adds a team member.
func AddToTeamHandler(svc TeamService) mcpsdk.ToolHandlerFor[TeamMemberInput, domainpokemon.TeamResponse] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, input TeamMemberInput) (*mcpsdk.CallToolResult, domainpokemon.TeamResponse, error) {
		team, err := svc.Add(ctx, input.UserID, input.PokemonName)
		if err != nil {
			return nil, domainpokemon.TeamResponse{}, err
		}
		return nil, team, nil
	}
}

// RemoveFromTeamHandler removes a team member.
func RemoveFromTeamHandler(svc TeamService) mcpsdk.ToolHandlerFor[TeamMemberInput, domainpokemon.TeamResponse] {
	return func(ctx context.Context, _ *mcpsdk.CallToolRequest, input TeamMemberInput) (*mcpsdk.CallToolResult, domainpokemon.TeamResponse, error) {
		team, err := svc.Remove(ctx, input.UserID, input.PokemonName)
		if err != nil {
			return nil, domainpokemon.TeamResponse{}, err
		}
		return nil, team, nil
	}
}
