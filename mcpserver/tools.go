package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/palette-lab/api/colors"
	"github.com/palette-lab/api/models"
)

func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool("color_convert",
			mcp.WithDescription("Parse a color string (hex, rgb(...) or hsl(...)) and return all three representations plus a name"),
			mcp.WithString("input",
				mcp.Required(),
				mcp.Description("Color text, e.g. #FF0000, rgb(255, 0, 0) or hsl(0, 100%, 50%)"),
			),
		),
		s.handleColorConvert,
	)

	s.server.AddTool(
		mcp.NewTool("palette_generate",
			mcp.WithDescription("Derive a color-harmony palette from a base color"),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Base color in any accepted text form"),
			),
			mcp.WithString("variant",
				mcp.Required(),
				mcp.Description("Palette variant to derive"),
				mcp.Enum("complementary", "analogous", "triadic", "tetradic", "monochromatic"),
			),
			mcp.WithNumber("count",
				mcp.Description("Sample count for monochromatic palettes, 3 to 10 (default 5)"),
			),
		),
		s.handlePaletteGenerate,
	)

	s.server.AddTool(
		mcp.NewTool("color_random",
			mcp.WithDescription("Sample a random color"),
		),
		s.handleColorRandom,
	)

	s.server.AddTool(
		mcp.NewTool("color_name",
			mcp.WithDescription("Get the approximate human-readable name of a color"),
			mcp.WithString("color",
				mcp.Required(),
				mcp.Description("Color in any accepted text form"),
			),
		),
		s.handleColorName,
	)
}

func (s *Server) handleColorConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError("input is required"), nil
	}

	color, parseErr := colors.Parse(input)
	if parseErr != nil {
		return mcp.NewToolResultError(parseErr.Error()), nil
	}

	return colorInfoResult(color)
}

func (s *Server) handlePaletteGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	colorArg, err := req.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color is required"), nil
	}

	variantArg, err := req.RequireString("variant")
	if err != nil {
		return mcp.NewToolResultError("variant is required"), nil
	}

	base, parseErr := colors.Parse(colorArg)
	if parseErr != nil {
		return mcp.NewToolResultError(parseErr.Error()), nil
	}

	variant, variantErr := colors.ParseVariant(variantArg)
	if variantErr != nil {
		return mcp.NewToolResultError(variantErr.Error()), nil
	}

	count := 0
	if raw, ok := req.GetArguments()["count"]; ok {
		switch v := raw.(type) {
		case float64:
			count = int(v)
		case int:
			count = v
		default:
			return mcp.NewToolResultError("count must be a number"), nil
		}
	}
	if count != 0 {
		if variant != colors.Monochromatic {
			return mcp.NewToolResultError("count only applies to monochromatic palettes"), nil
		}
		if count < colors.MinMonochromeCount || count > colors.MaxMonochromeCount {
			return mcp.NewToolResultError(fmt.Sprintf("count must be within [%d, %d]",
				colors.MinMonochromeCount, colors.MaxMonochromeCount)), nil
		}
	}

	response := models.PaletteResponse{
		Variant: string(variant),
		Base:    base,
		Colors:  colors.Generate(base, variant, count),
	}

	data, marshalErr := json.MarshalIndent(response, "", "  ")
	if marshalErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal palette: %v", marshalErr)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleColorRandom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return colorInfoResult(colors.Random())
}

func (s *Server) handleColorName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	colorArg, err := req.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color is required"), nil
	}

	color, parseErr := colors.Parse(colorArg)
	if parseErr != nil {
		return mcp.NewToolResultError(parseErr.Error()), nil
	}

	return mcp.NewToolResultText(color.Name), nil
}

func colorInfoResult(color models.ColorInfo) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(color, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal color: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
