package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Session resolution for GraphQL requests.
// Priority: 1) X-Cart-Session header, 2) __cart query param, 3) JSON variables.__cart
const (
	HeaderSession     = "X-Cart-Session"
	QueryParamSession = "__cart"
	VarSession        = "__cart"
)

// SessionFromRequest returns the session id named by the header or query
// param, if it is a valid UUID.
func SessionFromRequest(r *http.Request) (string, bool) {
	if h := r.Header.Get(HeaderSession); h != "" {
		if id, err := uuid.Parse(h); err == nil {
			return id.String(), true
		}
	}
	if q := r.URL.Query().Get(QueryParamSession); q != "" {
		if id, err := uuid.Parse(q); err == nil {
			return id.String(), true
		}
	}
	return "", false
}

// SessionFromVariables parses variables.__cart from a JSON request body.
func SessionFromVariables(body []byte) (string, bool) {
	var payload struct {
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Variables == nil {
		return "", false
	}
	v, ok := payload.Variables[VarSession].(string)
	if !ok {
		return "", false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
