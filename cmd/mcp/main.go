package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Request represents a minimal JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents a minimal JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// ResponseError is a JSON-RPC error payload.
type ResponseError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult is returned for the "initialize" method.
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      map[string]interface{} `json:"serverInfo"`
}

// Tool describes an MCP tool.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty"`
}

// ListToolsResult is returned by "tools/list".
type ListToolsResult struct {
	Tools      []Tool  `json:"tools"`
	NextCursor *string `json:"nextCursor,omitempty"`
}

// ToolCallParams are the parameters for "tools/call".
type ToolCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// ContentItem represents a piece of tool output.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ToolCallResult wraps tool output content.
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
}

// MCPServer handles MCP requests over stdio and proxies tool calls to the
// HR agent HTTP API.
type MCPServer struct {
	baseURL string
	client  *http.Client
	in      *bufio.Reader
	out     *bufio.Writer
	outMu   sync.Mutex
	tools   []Tool
}

func main() {
	// Stdout carries the protocol; logs must go to Stderr.
	log.SetOutput(os.Stderr)

	baseURL := strings.TrimRight(getEnv("HRAGENT_BASE_URL", "http://localhost:8080/api/v1"), "/")
	server := &MCPServer{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 90 * time.Second, // ask waits for two model round-trips
		},
		in:  bufio.NewReader(os.Stdin),
		out: bufio.NewWriter(os.Stdout),
		tools: []Tool{
			{
				Name:        "ask_hr_question",
				Description: "Ask a natural-language question about the employee dataset. The answer is audited and the verdict is included.",
				InputSchema: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"question": map[string]interface{}{
							"type":        "string",
							"description": "The question to answer against the HR data.",
						},
					},
					"required": []string{"question"},
				},
			},
			{
				Name:        "list_interaction_logs",
				Description: "List recent question/answer audit entries, newest first.",
				InputSchema: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"limit": map[string]interface{}{
							"type":        "integer",
							"minimum":     1,
							"maximum":     100,
							"description": "Number of entries to return (default 10).",
						},
					},
				},
			},
			{
				Name:        "hr_stats",
				Description: "Return headcount, salary and performance aggregates for the employee dataset.",
				InputSchema: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
	}

	log.Println("MCP Shim Server starting...")
	if err := server.Serve(); err != nil {
		log.Fatalf("mcp server failed: %v", err)
	}
}

// Serve starts the read/dispatch/write loop.
func (s *MCPServer) Serve() error {
	for {
		req, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			if err.Error() != "empty line" {
				log.Printf("failed to read/parse message: %v", err)
			}
			continue
		}

		// Handle request concurrently; notifications produce no response.
		go func(r Request) {
			resp := s.handleRequest(r)
			if resp == nil {
				return
			}

			if err := s.writeMessage(*resp); err != nil {
				log.Printf("failed to write message: %v", err)
			}
		}(req)
	}
}

// handleRequest routes a single MCP request.
func (s *MCPServer) handleRequest(req Request) *Response {
	switch req.Method {
	case "initialize":
		return s.reply(req, InitializeResult{
			ProtocolVersion: "2024-11-05",
			Capabilities: map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			ServerInfo: map[string]interface{}{
				"name":    "hragent-mcp-shim",
				"version": "1.0.0",
			},
		})

	case "notifications/initialized":
		return nil

	case "tools/list":
		return s.reply(req, ListToolsResult{Tools: s.tools})
	case "tools/call":
		return s.handleToolCall(req)
	case "ping":
		return s.reply(req, map[string]interface{}{})
	case "shutdown":
		go func() {
			time.Sleep(500 * time.Millisecond)
			os.Exit(0)
		}()
		return s.reply(req, nil)
	case "notifications/exit":
		os.Exit(0)
		return nil
	}

	return s.error(req, -32601, fmt.Sprintf("method not found: %s", req.Method), nil)
}

func (s *MCPServer) handleToolCall(req Request) *Response {
	var params ToolCallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return s.error(req, -32602, "invalid params", err.Error())
		}
	}

	var (
		result *ToolCallResult
		rpcErr *ResponseError
	)

	switch params.Name {
	case "ask_hr_question":
		result, rpcErr = s.callAsk(params.Arguments)
	case "list_interaction_logs":
		result, rpcErr = s.callLogs(params.Arguments)
	case "hr_stats":
		result, rpcErr = s.callStats()
	default:
		return s.error(req, -32601, fmt.Sprintf("tool not found: %s", params.Name), nil)
	}

	if rpcErr != nil {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   rpcErr,
		}
	}
	return s.reply(req, result)
}

func (s *MCPServer) callAsk(args map[string]interface{}) (*ToolCallResult, *ResponseError) {
	rawQuestion, ok := args["question"]
	if !ok {
		return nil, &ResponseError{Code: -32602, Message: "question is required"}
	}

	question, ok := rawQuestion.(string)
	if !ok || strings.TrimSpace(question) == "" {
		return nil, &ResponseError{Code: -32602, Message: "question must be a non-empty string"}
	}

	body, err := json.Marshal(map[string]string{"question": strings.TrimSpace(question)})
	if err != nil {
		return nil, &ResponseError{Code: -32000, Message: "failed to encode request", Data: err.Error()}
	}

	return s.proxy(http.MethodPost, s.baseURL+"/ask", body)
}

func (s *MCPServer) callLogs(args map[string]interface{}) (*ToolCallResult, *ResponseError) {
	limit := 10
	if rawLimit, ok := args["limit"]; ok {
		switch v := rawLimit.(type) {
		case float64:
			limit = int(v)
		case int:
			limit = v
		case json.Number:
			if i, err := strconv.Atoi(string(v)); err == nil {
				limit = i
			}
		}
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return s.proxy(http.MethodGet, fmt.Sprintf("%s/logs?limit=%d", s.baseURL, limit), nil)
}

func (s *MCPServer) callStats() (*ToolCallResult, *ResponseError) {
	return s.proxy(http.MethodGet, s.baseURL+"/stats", nil)
}

func (s *MCPServer) proxy(method, urlStr string, body []byte) (*ToolCallResult, *ResponseError) {
	log.Printf("Calling upstream: %s %s", method, urlStr)

	ctx, cancel := context.WithTimeout(context.Background(), s.client.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return nil, &ResponseError{Code: -32000, Message: "failed to build request", Data: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &ResponseError{Code: -32000, Message: "request failed", Data: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ResponseError{Code: -32000, Message: "failed to read response", Data: err.Error()}
	}

	if resp.StatusCode >= 300 {
		return nil, &ResponseError{Code: -32000, Message: fmt.Sprintf("upstream error: %s", resp.Status), Data: string(respBody)}
	}

	return &ToolCallResult{
		Content: []ContentItem{
			{
				Type: "text",
				Text: string(respBody),
			},
		},
	}, nil
}

func (s *MCPServer) reply(req Request, result interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

func (s *MCPServer) error(req Request, code int, message string, data interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Error: &ResponseError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// readMessage reads newline-delimited JSON: one line is one message.
func (s *MCPServer) readMessage() (Request, error) {
	line, err := s.in.ReadBytes('\n')
	if err != nil {
		return Request{}, err
	}

	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return Request{}, fmt.Errorf("empty line")
	}

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Request{}, fmt.Errorf("json parse error: %w", err)
	}

	return req, nil
}

// writeMessage writes one JSON message followed by a newline.
func (s *MCPServer) writeMessage(resp Response) error {
	s.outMu.Lock()
	defer s.outMu.Unlock()

	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := s.out.Write(payload); err != nil {
		return err
	}
	if _, err := s.out.Write([]byte("\n")); err != nil {
		return err
	}

	return s.out.Flush()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
