package auth

import "net/http"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// editors may create and edit content but not delete it or touch scraper settings.
var editorMethods = map[string]bool{
	http.MethodPost: true,
	http.MethodPut:  true,
}

// permits reports whether role may call method on an admin route.
// editorOK marks the routes editors are allowed on at all.
func permits(role, method string, editorOK bool) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleEditor:
		return editorOK && editorMethods[method]
	default:
		return false
	}
}
