package graphql

import (
	"bytes"
	"io"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"coffeebar.GO/api"
	"coffeebar.GO/app"
	"coffeebar.GO/core/session"
	graphqlpkg "coffeebar.GO/graphql"
	"coffeebar.GO/graphqlserver"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// GraphQLRequest is the standard GraphQL request body
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLResponse is the standard GraphQL response
type GraphQLResponse struct {
	Data   interface{}    `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

type GraphQLError struct {
	Message string `json:"message"`
}

func RegisterGraphQLRoutes(e *echo.Echo, deps *app.Deps) {
	schema, err := graphqlserver.NewSchema(deps)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	registerRoutes(e, schema, deps.Config.CartKey)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a custom schema (for tests with mocks).
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *graphql.Schema, cartKey string) {
	registerRoutes(e, schema, cartKey)
}

func registerRoutes(e *echo.Echo, schema *graphql.Schema, cartKey string) {
	h := echo.WrapHandler(sessionContextMiddleware(graphqlserver.Handler(schema), cartKey))
	sess := session.Middleware(cartKey)
	e.POST("/graphql", h, sess)
	e.GET("/graphql", h, sess)
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

// sessionContextMiddleware lets a request name its cart session explicitly,
// overriding the cookie: header > __cart query param > variables.__cart.
func sessionContextMiddleware(next http.Handler, cartKey string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := graphqlpkg.SessionFromRequest(r)
		if !ok && r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
			id, ok = graphqlpkg.SessionFromVariables(body)
		}
		if ok {
			r = r.WithContext(session.WithCartKey(r.Context(), session.Key(cartKey, id)))
		}
		next.ServeHTTP(w, r)
	})
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}
