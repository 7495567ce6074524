package providers

import (
	"net/http"

	"solaced/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	GetRoutes() []structures.Route
}

// RouterProvider collects handlers per URL and method. Registering GET
// and POST on the same URL yields a single route whose handler
// dispatches on method, so the route table can be mounted on a plain
// http.ServeMux.
type RouterProvider struct {
	handlers map[string]map[string]http.Handler
	order    []string
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{
		handlers: make(map[string]map[string]http.Handler),
	}
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	if _, ok := rp.handlers[url]; !ok {
		rp.handlers[url] = make(map[string]http.Handler)
		rp.order = append(rp.order, url)
	}
	rp.handlers[url][method] = handler
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	routes := make([]structures.Route, 0, len(rp.order))
	for _, url := range rp.order {
		routes = append(routes, structures.Route{
			Url:     url,
			Handler: methodHandler(rp.handlers[url]),
		})
	}
	return routes
}

func methodHandler(byMethod map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := byMethod[r.Method]
		if !ok {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
