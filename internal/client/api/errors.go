package api

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/khebbar/ayuda-cli/internal/common"
)

// Error is the typed failure the gateway raises. Message is the normalized,
// human-readable text the UI layer displays; the wrapped sentinel (matched
// with errors.Is) classifies the failure for flow-level branching.
type Error struct {
	Status  int
	Message string
	err     error
}

// NewError builds a gateway error with an optional wrapped sentinel.
func NewError(status int, message string, sentinel error) *Error {
	return &Error{Status: status, Message: message, err: sentinel}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.err != nil {
		return e.err.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error { return e.err }

func sentinelFor(status int) error {
	switch {
	case status == 401:
		return common.ErrUnauthorized
	case status == 404:
		return common.ErrNotFound
	case status >= 500:
		return common.ErrServer
	default:
		return nil
	}
}

var htmlMarkers = [][]byte{[]byte("<!DOCTYPE"), []byte("<!doctype"), []byte("<html")}

// looksLikeHTML reports whether a body that should have been JSON is an HTML
// error page (backend down or a proxy answering in its place).
func looksLikeHTML(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	for _, m := range htmlMarkers {
		if bytes.HasPrefix(trimmed, m) || bytes.Contains(trimmed, []byte("<html>")) {
			return true
		}
	}
	return false
}

// normalizeMessage extracts a single human-readable message from a structured
// error payload. Preference order: a detail string, an array of validation
// errors (each contributing its own message, joined by commas), a message
// field, an errors array/map, then the raw payload as text.
func normalizeMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return text
	}

	if raw, ok := payload["detail"]; ok {
		if msg := detailMessage(raw); msg != "" {
			return msg
		}
	}
	if raw, ok := payload["message"]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}
	if raw, ok := payload["errors"]; ok {
		if msg := errorsMessage(raw); msg != "" {
			return msg
		}
	}
	return text
}

func detailMessage(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}

	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return strings.TrimSpace(string(raw))
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		var str string
		if json.Unmarshal(item, &str) == nil {
			parts = append(parts, str)
			continue
		}
		var obj struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		}
		if json.Unmarshal(item, &obj) == nil {
			switch {
			case obj.Msg != "":
				parts = append(parts, obj.Msg)
				continue
			case obj.Message != "":
				parts = append(parts, obj.Message)
				continue
			}
		}
		parts = append(parts, string(item))
	}
	return strings.Join(parts, ", ")
}

func errorsMessage(raw json.RawMessage) string {
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return strings.Join(list, ", ")
	}

	var m map[string]string
	if json.Unmarshal(raw, &m) == nil {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, m[k])
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
