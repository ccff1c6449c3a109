package domain

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Tool is the player's active interaction mode
type Tool string

// Closed tool enumeration
const (
	ToolNone        Tool = "none"
	ToolSickle      Tool = "sickle"
	ToolWater       Tool = "water"
	ToolFertilizer  Tool = "fertilizer"
	ToolWeedRemover Tool = "weed-remover"
)

// ToolInfo describes a tool as shown on the toolbar
type ToolInfo struct {
	ID    Tool   `json:"id" yaml:"id"`
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
}

// Tools lists every tool in toolbar order
var Tools = []ToolInfo{
	{ID: ToolNone, Icon: "🤲", Label: "Hand"},
	{ID: ToolSickle, Icon: "🪓", Label: "Sickle"},
	{ID: ToolWater, Icon: "💧", Label: "Water"},
	{ID: ToolFertilizer, Icon: "🪱", Label: "Fertilizer"},
	{ID: ToolWeedRemover, Icon: "🌿", Label: "Weeds"},
}

// maxSuggestionDistance bounds how far a typo may be from a tool id to be suggested
const maxSuggestionDistance = 3

// IsKnown reports whether t is part of the tool enumeration
func (t Tool) IsKnown() bool {
	for _, info := range Tools {
		if info.ID == t {
			return true
		}
	}
	return false
}

// ParseTool converts user input to a Tool. Unknown names return ErrUnknownTool,
// with the closest tool id suggested when one is near enough.
func ParseTool(s string) (Tool, error) {
	t := Tool(strings.ToLower(strings.TrimSpace(s)))
	if t.IsKnown() {
		return t, nil
	}
	if suggestion, ok := SuggestTool(string(t)); ok {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownTool, s, suggestion)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// SuggestTool returns the known tool id closest to s by edit distance
func SuggestTool(s string) (Tool, bool) {
	best := Tool("")
	bestDist := maxSuggestionDistance + 1
	for _, info := range Tools {
		d := levenshtein.ComputeDistance(s, string(info.ID))
		if d < bestDist {
			best, bestDist = info.ID, d
		}
	}
	return best, best != ""
}
