package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/extract"
)

// Extract implements extract.Extractor using chat/completions with a
// forced function call, so the arguments always arrive as one JSON
// object we can validate against the attribute schema.
func (c *Client) Extract(ctx context.Context, text string) (entity.Attributes, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	schema := extract.BuildAttributesJSONSchema()
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": extract.SystemPrompt},
			{"role": "user", "content": text},
		},
		"functions": []map[string]any{
			{
				"name":        extract.FunctionName,
				"description": "Extract GPA, graduation date, class standing, internship count, and experience signals from a resume.",
				"parameters":  schema,
			},
		},
		"function_call": map[string]any{"name": extract.FunctionName},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.Attributes{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				FunctionCall *struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function_call"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return entity.Attributes{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 || cc.Choices[0].Message.FunctionCall == nil {
		c.log.Error("llm.extract.no_function_call", "req_id", rid, "raw_bytes", len(raw))
		return entity.Attributes{}, raw, fmt.Errorf("model did not return a function call")
	}
	args := []byte(strings.TrimSpace(cc.Choices[0].Message.FunctionCall.Arguments))

	// Validate strictly first.
	if err := extract.ValidateJSONAgainstSchema(schema, args); err != nil {
		if !c.cfg.LenientOptional {
			c.log.Error("llm.extract.schema_validation_failed", "req_id", rid, "error", err)
			return entity.Attributes{}, args, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, changed, sErr := extract.SanitizeAttributes(args)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed", "req_id", rid, "error", sErr)
			return entity.Attributes{}, args, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := extract.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed", "req_id", rid, "error", vErr)
			return entity.Attributes{}, args, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied", "req_id", rid, "changed", changed)
		args = cleaned
	}

	var out entity.Attributes
	if err := json.Unmarshal(args, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed", "req_id", rid, "error", err)
		return entity.Attributes{}, args, fmt.Errorf("unmarshal attributes: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"has_gpa", out.GPA != nil,
		"internships", out.NumInternships,
		"impact", out.ImpactQuality,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, args, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, nil
}
