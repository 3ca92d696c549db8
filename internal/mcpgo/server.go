package mcpgo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/noot-app/nut/internal/nutrition"
	"github.com/noot-app/nut/internal/types"
	"github.com/noot-app/nut/internal/version"
)

// Server exposes the nutrition calculator as MCP tools
type Server struct {
	mcpServer *server.MCPServer
	store     nutrition.Store
	calc      *nutrition.Calculator
	log       *slog.Logger
}

// ListItemsResponse represents the response from list_items
type ListItemsResponse struct {
	Count int              `json:"count"`
	Items []types.FoodItem `json:"items"`
}

// MealResponse represents the response from calculate_meal
type MealResponse struct {
	Found      bool                  `json:"found"`
	Candidates []string              `json:"candidates,omitempty"`
	Result     *nutrition.MealResult `json:"result,omitempty"`
}

// DietResponse represents the response from calculate_diet
type DietResponse struct {
	Found  bool                  `json:"found"`
	Result *nutrition.DietResult `json:"result,omitempty"`
}

// NewServer creates a new MCP server reading records from st
func NewServer(st nutrition.Store, logger *slog.Logger) *Server {
	mcpServer := server.NewMCPServer(
		"nut",
		version.Tag(),
		server.WithToolCapabilities(false), // Tools don't change dynamically
		server.WithRecovery(),
		server.WithLogging(),
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		calc:      nutrition.NewCalculator(st, logger),
		log:       logger,
	}

	s.addTools()

	return s
}

func (s *Server) addTools() {
	listTool := mcp.NewTool("list_items",
		mcp.WithDescription("List every food item with its nutrition values per serving descriptor"),
		mcp.WithOutputSchema[ListItemsResponse](),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	s.mcpServer.AddTool(listTool, s.handleListItems)

	mealTool := mcp.NewTool("calculate_meal",
		mcp.WithDescription("Calculate the total nutrition of a meal. The name may be an exact meal name or a case-insensitive regular expression matching exactly one meal."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Meal name or pattern"),
		),
		mcp.WithOutputSchema[MealResponse](),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	s.mcpServer.AddTool(mealTool, s.handleCalculateMeal)

	dietTool := mcp.NewTool("calculate_diet",
		mcp.WithDescription("Calculate the total nutrition of a diet plan by summing its meals. Meals that cannot be resolved are listed as missing."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Exact diet name"),
		),
		mcp.WithOutputSchema[DietResponse](),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	s.mcpServer.AddTool(dietTool, s.handleCalculateDiet)
}

func (s *Server) handleListItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Debug("handleListItems: Starting tool call")

	items, err := s.store.ListItems()
	if err != nil {
		s.log.Error("Listing items failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Listing items failed: %v", err)), nil
	}

	return structured(s.log, "handleListItems", ListItemsResponse{
		Count: len(items),
		Items: items,
	})
}

func (s *Server) handleCalculateMeal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Debug("handleCalculateMeal: Starting tool call", "arguments", request.GetArguments())

	name, err := request.RequireString("name")
	if err != nil {
		s.log.Warn("handleCalculateMeal: Missing 'name' parameter", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Missing required parameter 'name': %v", err)), nil
	}
	if name == "" {
		return mcp.NewToolResultError("Parameter 'name' must be at least 1 character long"), nil
	}

	res, err := s.calc.CalculateMeal(name)
	var amb *types.AmbiguousError
	switch {
	case errors.Is(err, types.ErrNotFound):
		return structured(s.log, "handleCalculateMeal", MealResponse{Found: false})
	case errors.As(err, &amb):
		return structured(s.log, "handleCalculateMeal", MealResponse{Found: false, Candidates: amb.Candidates})
	case err != nil:
		s.log.Error("Meal calculation failed", "meal", name, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Meal calculation failed: %v", err)), nil
	}

	return structured(s.log, "handleCalculateMeal", MealResponse{Found: true, Result: res})
}

func (s *Server) handleCalculateDiet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.log.Debug("handleCalculateDiet: Starting tool call", "arguments", request.GetArguments())

	name, err := request.RequireString("name")
	if err != nil {
		s.log.Warn("handleCalculateDiet: Missing 'name' parameter", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Missing required parameter 'name': %v", err)), nil
	}

	res, err := s.calc.CalculateDiet(name)
	switch {
	case errors.Is(err, types.ErrNotFound):
		return structured(s.log, "handleCalculateDiet", DietResponse{Found: false})
	case err != nil:
		s.log.Error("Diet calculation failed", "diet", name, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Diet calculation failed: %v", err)), nil
	}

	return structured(s.log, "handleCalculateDiet", DietResponse{Found: true, Result: res})
}

// structured returns response as structured content with a JSON text fallback
func structured(log *slog.Logger, handler string, response any) (*mcp.CallToolResult, error) {
	responseJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Error(handler+": Failed to marshal response", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal response: %v", err)), nil
	}

	log.Debug(handler+": Returning structured result", "response_size", len(responseJSON))
	return mcp.NewToolResultStructured(response, string(responseJSON)), nil
}

// ServeStdio serves the MCP server over stdio
func (s *Server) ServeStdio() error {
	s.log.Info("Starting MCP server in stdio mode")
	return server.ServeStdio(s.mcpServer)
}
