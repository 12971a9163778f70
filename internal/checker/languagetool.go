package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultLTEndpoint = "https://api.languagetool.org/v2/check"
	DefaultLTLang     = "en-GB"
)

// LanguageTool calls the LanguageTool HTTP API (public or self-hosted).
type LanguageTool struct {
	Endpoint string
	Lang     string
	Client   *http.Client
}

func NewLanguageTool(endpoint, lang string, timeout time.Duration) *LanguageTool {
	if endpoint == "" {
		endpoint = DefaultLTEndpoint
	}
	if lang == "" {
		lang = DefaultLTLang
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LanguageTool{
		Endpoint: endpoint,
		Lang:     lang,
		Client:   &http.Client{Timeout: timeout},
	}
}

type ltResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
		Rule struct {
			ID        string `json:"id"`
			IssueType string `json:"issueType"`
		} `json:"rule"`
	} `json:"matches"`
}

func (lt *LanguageTool) Check(ctx context.Context, text string) ([]Match, error) {
	ctx, span := otel.Tracer("writescore/checker").Start(ctx, "languagetool.check", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("lt.lang", lt.Lang), attribute.Int("text.len", len(text)))

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.Lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, lt.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("languagetool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := lt.Client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("languagetool call: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("languagetool status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var body ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("languagetool decode: %w", err)
	}

	out := make([]Match, 0, len(body.Matches))
	for _, m := range body.Matches {
		reps := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			reps = append(reps, r.Value)
		}
		cat := m.Rule.IssueType
		if cat == "" {
			cat = "unknown"
		}
		out = append(out, Match{
			Offset:       m.Offset,
			Length:       m.Length,
			Message:      m.Message,
			Replacements: reps,
			Category:     cat,
			Source:       "languagetool",
		})
	}
	span.SetAttributes(attribute.Int("lt.matches", len(out)))
	return out, nil
}
