package api

// HistoryEntry is one prior exchange entry replayed to the backend for
// conversational grounding.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message   string         `json:"message"`
	History   []HistoryEntry `json:"history"`
	RowNumber int            `json:"row_number"`
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response,omitempty"`
	QueryType string `json:"query_type,omitempty"`
	RowNumber int    `json:"row_number,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
}

type FeedbackRequest struct {
	MessageID    string `json:"message_id"`
	FeedbackType string `json:"feedback_type"`
	Comment      string `json:"comment"`
	BotResponse  string `json:"bot_response"`
	UserQuery    string `json:"user_query"`
	RowNumber    int    `json:"row_number"`
}

type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type AuthStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message,omitempty"`
}

type AuthURLResponse struct {
	Success bool   `json:"success"`
	AuthURL string `json:"auth_url,omitempty"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

type Document struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type DocumentsResponse struct {
	Success   bool       `json:"success"`
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
	Error     string     `json:"error,omitempty"`
}

type StatisticsResponse struct {
	Success    bool           `json:"success"`
	Statistics map[string]any `json:"statistics"`
	Error      string         `json:"error,omitempty"`
}

type RefreshCacheResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
