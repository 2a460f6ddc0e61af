package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"econograph/internal/logger"
	"econograph/internal/timeseries"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient generates report commentary through the OpenAI API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.Component("llm"),
	}
}

// seriesDigest is the compact per-series summary sent to the model
// instead of full observation lists.
type seriesDigest struct {
	Label     string   `json:"label"`
	Source    string   `json:"source,omitempty"`
	Units     string   `json:"units,omitempty"`
	Frequency string   `json:"frequency,omitempty"`
	Start     string   `json:"start,omitempty"`
	End       string   `json:"end,omitempty"`
	Points    int      `json:"points"`
	First     *float64 `json:"first,omitempty"`
	Last      *float64 `json:"last,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

// GenerateCommentary asks the model for a markdown commentary on the
// charted series.
func (c *OpenAIClient) GenerateCommentary(ctx context.Context, title string, datasets []timeseries.Dataset) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	c.log.Infof("Generating commentary for %d series", len(datasets))

	prompt := c.buildPrompt(title, datasets)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   4000,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	commentary := resp.Choices[0].Message.Content
	c.log.Infof("Generated commentary with %d characters", len(commentary))
	return commentary, nil
}

const systemPrompt = "You are an economic data analyst. Generate a concise markdown commentary on the provided economic time series. Describe each series' trajectory over the charted period, point out notable turning points, and note relationships between series where the data supports them. Do not speculate beyond the data provided."

// buildPrompt summarizes each series into a digest the model can
// reason about without the full observation lists.
func (c *OpenAIClient) buildPrompt(title string, datasets []timeseries.Dataset) string {
	digests := make([]seriesDigest, 0, len(datasets))
	for _, ds := range datasets {
		digests = append(digests, digestDataset(ds))
	}

	prompt := fmt.Sprintf("## Chart: %s\n\nSeries summaries:\n```json\n", title)
	if jsonData, err := json.MarshalIndent(digests, "", "  "); err == nil {
		prompt += string(jsonData)
	}
	prompt += "\n```\n\nWrite a commentary section for a report that charts these series together."
	return prompt
}

// digestDataset computes range and endpoint statistics over the
// present values of a dataset.
func digestDataset(ds timeseries.Dataset) seriesDigest {
	digest := seriesDigest{Label: ds.Label}
	if ds.Metadata != nil {
		digest.Source = ds.Metadata.Source
		digest.Units = ds.Metadata.Units
		digest.Frequency = ds.Metadata.Frequency
	}

	for _, point := range ds.Data {
		if timeseries.IsMissing(point.Value) {
			continue
		}
		v := *point.Value
		digest.Points++
		if digest.First == nil {
			digest.First = timeseries.Number(v)
			digest.Start = point.Date.String()
		}
		digest.Last = timeseries.Number(v)
		digest.End = point.Date.String()
		if digest.Min == nil || v < *digest.Min {
			digest.Min = timeseries.Number(v)
		}
		if digest.Max == nil || v > *digest.Max {
			digest.Max = timeseries.Number(v)
		}
	}
	return digest
}
