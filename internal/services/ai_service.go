package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/codehubhq/codehub-backend/internal/config"
)

const generatePrompt = `You are a senior software engineer. Write a clean,
idiomatic code snippet in the requested language that does exactly what the
user describes. Return ONLY the code, no commentary and no markdown fences.`

const convertPrompt = `You are a senior software engineer. Convert the given
code from the source language to the target language, preserving behavior
and idiom. Return ONLY the converted code, no commentary and no markdown
fences.`

const explainPrompt = `You are a senior software engineer. Explain what the
given code does, step by step, in plain language a junior developer can
follow. Keep it concise.`

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AIService fronts the code generation/conversion/explanation flows. It
// tries GLM first and falls back to DeepSeek; when every provider fails
// the caller gets ErrProviderFailure and the real cause is logged.
type AIService struct {
	cfg    *config.Config
	client *http.Client
}

func NewAIService(cfg *config.Config) *AIService {
	timeout := cfg.AITimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AIService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *AIService) GenerateSnippet(description, language string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", errors.New("description is required")
	}
	if language == "" {
		language = "javascript"
	}

	user := fmt.Sprintf("Language: %s\n\nDescription: %s", language, description)
	out, err := s.complete(generatePrompt, user)
	if err != nil {
		return "", err
	}
	return stripCodeFences(out), nil
}

func (s *AIService) ConvertCode(code, fromLang, toLang string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", errors.New("code is required")
	}
	if fromLang == "" || toLang == "" {
		return "", errors.New("source and target languages are required")
	}

	user := fmt.Sprintf("Convert from %s to %s:\n\n%s", fromLang, toLang, code)
	out, err := s.complete(convertPrompt, user)
	if err != nil {
		return "", err
	}
	return stripCodeFences(out), nil
}

func (s *AIService) ExplainCode(code, language string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", errors.New("code is required")
	}

	user := fmt.Sprintf("Language: %s\n\n%s", language, code)
	return s.complete(explainPrompt, user)
}

func (s *AIService) complete(system, user string) (string, error) {
	if s.cfg.GLMAPIKey != "" {
		out, err := s.completeWithProvider(s.cfg.GLMAPIURL, s.cfg.GLMAPIKey, s.cfg.GLMModel, system, user)
		if err == nil {
			return out, nil
		}
		slog.Warn("GLM completion failed", "error", err)
	}

	if s.cfg.DeepSeekAPIKey != "" {
		out, err := s.completeWithProvider(s.cfg.DeepSeekAPIURL, s.cfg.DeepSeekAPIKey, s.cfg.DeepSeekModel, system, user)
		if err == nil {
			return out, nil
		}
		slog.Warn("DeepSeek completion failed", "error", err)
	}

	return "", ErrProviderFailure
}

func (s *AIService) completeWithProvider(apiURL, apiKey, model, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("AI API error: status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("empty response from AI")
	}
	return content, nil
}

// stripCodeFences removes a surrounding markdown fence when the model
// ignores the no-fences instruction.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	if idx := strings.Index(content, "\n"); idx >= 0 {
		// Drop the language tag on the opening fence.
		content = content[idx+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
