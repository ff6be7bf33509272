package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PromptLoaderConfig describes where the sleep-plan prompt lives: a named
// prompt in Langfuse, a local file, or both (Langfuse wins, the file is
// the cache and offline fallback).
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	SavePath    string
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// LoadPrompt resolves the plan prompt. A successful Langfuse fetch is
// cached to SavePath so the API keeps its prompt across restarts even
// when Langfuse is unreachable.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.PromptName == "" {
		return readLocalPrompt(cfg.SavePath)
	}

	prompt, err := fetchManagedPrompt(ctx, cfg)
	if err == nil {
		if cfg.SavePath != "" {
			if err := cacheLocalPrompt(cfg.SavePath, prompt); err != nil {
				log.Printf("[langfuse] failed to cache plan prompt: %v", err)
			}
		}
		return prompt, nil
	}
	if !errors.Is(err, errLangfuseDisabled) {
		log.Printf("[langfuse] plan prompt fetch failed, trying local copy: %v", err)
	}

	return readLocalPrompt(cfg.SavePath)
}

func fetchManagedPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", errLangfuseDisabled
	}

	endpoint, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		query := endpoint.Query()
		query.Set("label", cfg.PromptLabel)
		endpoint.RawQuery = query.Encode()
	}

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	switch payload.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(payload.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		// Chat prompts are flattened to one system-prompt string; the
		// plan client only takes a single system message.
		var messages []promptMessage
		if err := json.Unmarshal(payload.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenPromptMessages(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", payload.Type)
	}
}

type promptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func flattenPromptMessages(messages []promptMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		content := msg.Content
		if msg.Type == "placeholder" {
			if msg.Name == "" {
				continue
			}
			content = "{{" + msg.Name + "}}"
		}
		if content == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		b.WriteString(strings.ToUpper(role))
		b.WriteString(": ")
		b.WriteString(content)
	}
	return b.String()
}

func readLocalPrompt(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no local prompt file configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

func cacheLocalPrompt(path, prompt string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
