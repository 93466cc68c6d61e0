package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		skipRequestBody := strings.Contains(contentType, "multipart/form-data")
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		entry.MatchID = pathSegmentAfter(r.URL.Path, "matches")
		entry.FoodPostID = pathSegmentAfter(r.URL.Path, "food")

		var requestBody []byte
		if !skipRequestBody && r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if entry.MatchID != "" && strings.Contains(r.URL.Path, "/status") {
				var statusRequest struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(requestBody, &statusRequest); err == nil {
					if match, err := s.service.GetMatch(r.Context(), entry.MatchID); err == nil {
						entry.OldStatus = string(match.Status)
						entry.NewStatus = statusRequest.Status
					}
				}
			}
		}

		rec := newResponseRecorder(w)

		next.ServeHTTP(rec, r)

		entry.StatusCode = rec.Status()
		entry.Response = string(rec.Body())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func pathSegmentAfter(path, segment string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == segment && i+1 < len(parts) {
			// Sub-resources like /food/available are not ids.
			if parts[i+1] == "available" || parts[i+1] == "recommended" {
				return ""
			}
			return parts[i+1]
		}
	}
	return ""
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/food"):
		if method == http.MethodPost {
			return "handlePostFood"
		} else if strings.Contains(path, "/available") {
			return "handleAvailableFood"
		} else if strings.Contains(path, "/history") {
			return "handleFoodPostHistory"
		}
		return "handleGetFoodPost"
	case strings.HasPrefix(path, "/matches"):
		if method == http.MethodPost {
			return "handleCreateMatch"
		} else if strings.Contains(path, "/status") {
			return "handleUpdateMatchStatus"
		} else if strings.Contains(path, "/recommended") {
			return "handleRecommendedMatches"
		}
		return "handleGetMatch"
	case strings.HasPrefix(path, "/orgs"):
		if strings.Contains(path, "/capacity") {
			return "handleOrgCapacity"
		} else if strings.Contains(path, "/impact") {
			return "handleOrgImpact"
		}
		return "handleOrgMatches"
	case strings.HasPrefix(path, "/donors"):
		if strings.Contains(path, "/impact") {
			return "handleDonorImpact"
		}
		return "handleDonorMatches"
	}

	return "unknown"
}
