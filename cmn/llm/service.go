package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Service interface {
	Chat(msg string) (string, error)
}

// deepSeekImpl 和 zhipuImpl 都是 OpenAI 风格的 chat/completions 协议，
// 只在地址、模型名和默认 system 提示上有差别
type deepSeekImpl struct {
}

type zhipuImpl struct {
}

func NewService() Service {
	switch platform {
	case "deepseek":
		return &deepSeekImpl{}
	case "zhipu":
		return &zhipuImpl{}
	}

	return &deepSeekImpl{}
}

// 请求消息结构
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// 请求体结构
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// 响应体结构（只取content字段）
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (*deepSeekImpl) Chat(msg string) (string, error) {
	if msg == "" {
		return "", nil
	}

	messages := []chatMessage{
		{Role: "system", Content: "You are a helpful assistant."},
		{Role: "user", Content: msg},
	}

	return doChat(platformConfig.BaseUrl+"/chat/completions", messages)
}

func (*zhipuImpl) Chat(msg string) (string, error) {
	if msg == "" {
		return "", nil
	}

	messages := []chatMessage{
		{Role: "user", Content: msg},
	}

	return doChat(platformConfig.BaseUrl+"/api/paas/v4/chat/completions", messages)
}

// doChat 发送一次对话请求并取回首个回复
func doChat(url string, messages []chatMessage) (string, error) {
	requestBody := chatRequest{
		Model:       platformConfig.Model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   2000,
	}

	bodyBytes, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+platformConfig.ApiKey)

	client := &http.Client{Timeout: chatTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat request status %d: %s", resp.StatusCode, string(respBytes))
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	var response chatResponse
	err = json.Unmarshal(respBytes, &response)
	if err != nil {
		return "", fmt.Errorf("failed to unmarshal chat response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat response has no choices")
	}

	return response.Choices[0].Message.Content, nil
}
