package ai

import (
	"context"
	"encoding/json"
	"strings"

	"go-card-ledger/internal/config"
	"go-card-ledger/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// The extraction prompt. We force raw JSON so the reply can go straight
// into models.CardFields without any chat fluff around it.
const extractionPrompt = `You are reading a photographed business card.

Extract these fields and reply with ONLY a JSON object, no markdown, no explanations:
{"name": "", "business_name": "", "mobile": "", "email": "", "address": "", "business_type": ""}

RULES:
1. "name" is the PERSON's name, "business_name" is the COMPANY's name. Do not swap them.
2. "mobile" keeps its country code if printed (e.g. "+91 98765 43210").
3. "business_type" is your best one-or-two-word guess (e.g. "Retail", "Textiles", "Consulting").
4. If a field is not on the card, use an empty string. Never invent values.`

// ScanCard sends the card photo to Gemini and returns whatever fields it
// could read. This NEVER returns an error: the contact form shows the
// (possibly empty) fields and lets the user fix them by hand, which beats
// showing a scary network error mid-scan.
func ScanCard(imageBytes []byte, format string, apiKey string) models.CardFields {
	ctx := context.Background()
	log := config.GetLogger()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		config.LogError(log, "ai", "ScanCard", "create client", nil, err)
		return models.CardFields{}
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	// "jpeg" / "png" — gallery pickers hand us either
	if format == "" {
		format = "jpeg"
	}

	resp, err := model.GenerateContent(ctx,
		genai.Text(extractionPrompt),
		genai.ImageData(format, imageBytes),
	)
	if err != nil {
		config.LogError(log, "ai", "ScanCard", "generate content", nil, err)
		return models.CardFields{}
	}

	return parseCardReply(resp)
}

// parseCardReply digs the JSON out of the model reply. Models love wrapping
// JSON in ```json fences no matter how firmly the prompt says not to.
func parseCardReply(resp *genai.GenerateContentResponse) models.CardFields {
	var fields models.CardFields

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fields
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok {
			continue
		}

		raw := strings.TrimSpace(string(txt))
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)

		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			config.LogError(config.GetLogger(), "ai", "parseCardReply", "parse reply", raw, err)
			return models.CardFields{}
		}
		return fields
	}

	return fields
}
