package agents

import "encoding/json"

type Tool struct {
	Type     string              `json:"type"`
	Function *FunctionDefinition `json:"function"`
}

type FunctionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

const RespondToolName = "respond"

var respondTool = Tool{
	Type: "function",
	Function: &FunctionDefinition{
		Name:        RespondToolName,
		Description: "Respond with optional edits",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"edits": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"old": {"type": "string"},
							"new": {"type": "string"}
						},
						"required": ["old", "new"]
					}
				},
				"message": {"type": "string"}
			},
			"required": ["message"]
		}`),
	},
}
