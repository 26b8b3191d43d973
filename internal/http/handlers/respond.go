package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"todo-manager/internal/http/dto"
)

// maxBodyBytes matches the 100kb default of common JSON body parsers.
const maxBodyBytes = 100 << 10

const (
	msgInvalidJSON      = "Invalid JSON body"
	msgTitleRequired    = "Title is required"
	msgTodoNotFound     = "Todo not found"
	msgTodoDeleted      = "Todo deleted"
	msgQuestionRequired = "Question is required"
	msgAssistantBusy    = "Assistant is busy, try again later"
	msgInvalidAnswer    = "Invalid response from Gemini"
	msgAskFailed        = "Failed to get response from Gemini"
	msgInternal         = "internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON reads a size-limited JSON body holding exactly one value into v.
// An empty body is not an error and leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errTrailingData
	}
	return nil
}
