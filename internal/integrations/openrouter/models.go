package openrouter

// Message одно сообщение диалога в формате chat completions
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest тело запроса к OpenRouter API
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
}

// chatResponse ответ OpenRouter API
type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}
