package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"knowledgebase/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable is the single error kind for a failed analysis run. A
// transport failure, a bad credential, a malformed body and a response
// missing a required field all collapse into it; there is no partial
// recovery.
var ErrUnavailable = errors.New("insights unavailable")

// Analyzer is the analysis boundary used by the controllers.
type Analyzer interface {
	// Analyze runs a single analysis pass over the collection and returns
	// the popular-topics/emerging-trends summary.
	Analyze(ctx context.Context, articles []models.Article) (*models.InsightSummary, error)
}

// Client implements Analyzer on the OpenAI chat completions API.
type Client struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

const defaultModel = openai.GPT4o

func NewClient(cfg Config) *Client {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{client: c, model: model}
}

// articleDigest is the reduced record sent for analysis: content body plus
// engagement and recency signals only. No tags, no topic, no id.
type articleDigest struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ViewCount int       `json:"viewCount"`
	CreatedAt time.Time `json:"createdAt"`
}

const systemPrompt = `You analyze articles from an internal knowledge base.
Respond with a JSON object only, no other text, matching exactly:
{
  "popularTopics": [{"topic": "topic name", "score": 0-100 popularity number}],
  "emergingTrends": ["trend description"]
}
"popularTopics" holds the top 5 most popular topics and "emergingTrends" holds 3 to 5 entries.`

func (c *Client) Analyze(ctx context.Context, articles []models.Article) (*models.InsightSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	digests := make([]articleDigest, 0, len(articles))
	for _, a := range articles {
		digests = append(digests, articleDigest{
			Title:     a.Title,
			Content:   a.Content,
			ViewCount: a.ViewCount,
			CreatedAt: a.CreatedAt,
		})
	}

	payload, err := json.Marshal(digests)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	userPrompt := fmt.Sprintf(`Analyze the following articles from our internal knowledge base.
Based on their content, view counts, and creation dates, identify:
1. The top 5 most popular topics. A topic is popular if it has high view counts or is frequently mentioned.
2. 3-5 emerging trends. An emerging trend is a topic that appears more frequently in recently created articles.

Articles: %s`, payload)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no completion choices returned", ErrUnavailable)
	}

	return parseSummary(resp.Choices[0].Message.Content)
}

// parseSummary decodes the completion body and rejects anything that does
// not carry both required fields.
func parseSummary(content string) (*models.InsightSummary, error) {
	var raw struct {
		PopularTopics  []models.TopicScore `json:"popularTopics"`
		EmergingTrends []string            `json:"emergingTrends"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", ErrUnavailable, err)
	}
	if raw.PopularTopics == nil || raw.EmergingTrends == nil {
		return nil, fmt.Errorf("%w: response is missing required fields", ErrUnavailable)
	}
	return &models.InsightSummary{
		PopularTopics:  raw.PopularTopics,
		EmergingTrends: raw.EmergingTrends,
	}, nil
}
