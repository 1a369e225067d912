package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const graphiqlPage = `<!DOCTYPE html>
<html>
	<head>
		<title>GraphiQL - People API</title>
		<style>
			body { margin: 0; }
			#graphiql { height: 100vh; }
		</style>
		<link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
	</head>
	<body>
		<div id="graphiql">Loading...</div>
		<script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
		<script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
		<script src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
		<script>
			const fetcher = GraphiQL.createFetcher({ url: "/graphql" });
			ReactDOM.createRoot(document.getElementById("graphiql")).render(
				React.createElement(GraphiQL, { fetcher: fetcher })
			);
		</script>
	</body>
</html>
`

type GraphiQLHandler struct{}

func NewGraphiQLHandler() *GraphiQLHandler {
	return &GraphiQLHandler{}
}

// Show serves the embedded GraphiQL IDE pointed at /graphql
func (h *GraphiQLHandler) Show(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiqlPage))
}
