package server

import (
	"bytes"
	"net/http"
)

// maxAuditBodyBytes caps how much of a response is captured for
// auditing so large listings do not balloon the audit log.
const maxAuditBodyBytes = 4096

// responseRecorder captures the status code and a bounded copy of the
// response body while passing everything through to the real writer.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if remaining := maxAuditBodyBytes - r.body.Len(); remaining > 0 {
		if len(b) <= remaining {
			r.body.Write(b)
		} else {
			r.body.Write(b[:remaining])
		}
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) Status() int {
	return r.status
}

func (r *responseRecorder) Body() []byte {
	return r.body.Bytes()
}
