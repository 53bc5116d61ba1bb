// Package extractor calls an OpenAI-compatible AI gateway to extract
// structured item attributes from a photo. The model is forced through a
// function-calling schema so the reply is machine-parseable JSON rather
// than free text.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/smartonix/inventory-backend/internal/config"
	"github.com/smartonix/inventory-backend/internal/domain"
)

const systemPrompt = `You are an expert at analyzing items for insurance documentation. ` +
	`Extract detailed information about items in images. Be specific and accurate. ` +
	`For estimated_value, provide a realistic replacement cost in USD.`

const extractFunctionName = "extract_item_details"

// ItemDetails is the structured result extracted from one photo.
type ItemDetails struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	EstimatedValue float64  `json:"estimated_value"`
	Condition      string   `json:"condition"`
	Brand          *string  `json:"brand,omitempty"`
	Model          *string  `json:"model,omitempty"`
	Color          *string  `json:"color,omitempty"`
}

// Client calls the AI gateway's chat completions endpoint.
type Client struct {
	http  *resty.Client
	model string
}

// New creates a gateway client from config.
func New(cfg config.ExtractorConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &Client{
		http:  httpClient,
		model: cfg.Model,
	}
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Tools      []tool        `json:"tools"`
	ToolChoice toolChoice    `json:"tool_choice"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

type toolChoice struct {
	Type     string             `json:"type"`
	Function toolChoiceFunction `json:"function"`
}

type toolChoiceFunction struct {
	Name string `json:"name"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

var extractSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"name": {"type": "string", "description": "Short descriptive name of the item"},
		"description": {"type": "string", "description": "Detailed description including notable features"},
		"category": {"type": "string", "enum": ["electronics", "furniture", "clothing", "toys", "appliances", "other"]},
		"estimated_value": {"type": "number", "description": "Estimated replacement value in USD"},
		"condition": {"type": "string", "enum": ["excellent", "good", "fair", "poor"]},
		"brand": {"type": "string", "description": "Brand name if identifiable"},
		"model": {"type": "string", "description": "Model name or number if identifiable"},
		"color": {"type": "string", "description": "Primary color of the item"}
	},
	"required": ["name", "description", "category", "estimated_value", "condition"],
	"additionalProperties": false
}`)

// ExtractFromImage asks the gateway to describe the item in the photo at
// the given URL. All gateway and parse failures wrap domain.ErrExtraction.
func (c *Client) ExtractFromImage(ctx context.Context, imgURL string) (*ItemDetails, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: "Analyze this item and extract its details for an insurance inventory."},
					{Type: "image_url", ImageURL: &imageURL{URL: imgURL}},
				},
			},
		},
		Tools: []tool{{
			Type: "function",
			Function: toolFunction{
				Name:        extractFunctionName,
				Description: "Extract structured details about an item from a photo",
				Parameters:  extractSchema,
			},
		}},
		ToolChoice: toolChoice{
			Type:     "function",
			Function: toolChoiceFunction{Name: extractFunctionName},
		},
	}

	var respBody chatResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&respBody).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("%w: gateway request: %v", domain.ErrExtraction, err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if err := json.Unmarshal(resp.Body(), &respBody); err == nil && respBody.Error != nil {
			msg = respBody.Error.Message
		}
		return nil, fmt.Errorf("%w: gateway returned %d: %s", domain.ErrExtraction, resp.StatusCode(), msg)
	}

	if len(respBody.Choices) == 0 || len(respBody.Choices[0].Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("%w: gateway reply contains no tool call", domain.ErrExtraction)
	}

	call := respBody.Choices[0].Message.ToolCalls[0].Function
	if call.Name != extractFunctionName {
		return nil, fmt.Errorf("%w: unexpected tool call %q", domain.ErrExtraction, call.Name)
	}

	var details ItemDetails
	if err := json.Unmarshal([]byte(call.Arguments), &details); err != nil {
		return nil, fmt.Errorf("%w: parse tool arguments: %v", domain.ErrExtraction, err)
	}

	return &details, nil
}
