package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	parseModeHTML  = "HTML"
)

// apiBaseURL is a variable so tests can point the client at httptest servers
var apiBaseURL = "https://api.telegram.org/bot"

// Client represents a Telegram Bot API client
type Client struct {
	botToken   string
	chatID     string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP timeout for Bot API calls
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string, opts ...ClientOption) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}

	c := &Client{
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ChatID returns the target chat
func (c *Client) ChatID() string {
	return c.chatID
}

// InlineKeyboardButton is a single button in an inline keyboard
type InlineKeyboardButton struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// InlineKeyboardMarkup is the reply_markup attached to a message
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// Message is the sent message returned by sendMessage
type Message struct {
	MessageID int `json:"message_id"`
}

type sendMessageRequest struct {
	ChatID      string                `json:"chat_id"`
	Text        string                `json:"text"`
	ParseMode   string                `json:"parse_mode"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// apiResponse is the envelope every Bot API method returns
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	ErrorCode   int             `json:"error_code"`
	Result      json.RawMessage `json:"result"`
}

// SendMessageWithKeyboard sends an HTML text message with an optional inline keyboard
func (c *Client) SendMessageWithKeyboard(ctx context.Context, text string, keyboard *InlineKeyboardMarkup) (*Message, error) {
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	payload := sendMessageRequest{
		ChatID:      c.chatID,
		Text:        text,
		ParseMode:   parseModeHTML,
		ReplyMarkup: keyboard,
	}

	var msg Message
	if err := c.call(ctx, "sendMessage", payload, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// call posts payload to a Bot API method and decodes the result into out
func (c *Client) call(ctx context.Context, method string, payload interface{}, out interface{}) error {
	url := fmt.Sprintf("%s%s/%s", apiBaseURL, c.botToken, method)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var result apiResponse
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && result.Description != "" {
			return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, result.Description)
		}
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	if decodeErr != nil {
		return fmt.Errorf("parsing response: %w", decodeErr)
	}

	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	if out != nil && len(result.Result) > 0 {
		if err := json.Unmarshal(result.Result, out); err != nil {
			return fmt.Errorf("parsing result: %w", err)
		}
	}

	return nil
}
