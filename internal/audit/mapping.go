package audit

import "strings"

// ActionResource holds action and resource derived from an HTTP route.
type ActionResource struct {
	Action   string
	Resource string
}

// ParseRoute returns action and resource for an HTTP method and route
// pattern (e.g. POST /api/v1/participations). Action is a verb: create,
// get, list, update, delete. Resource is the singular form of the first
// collection segment after the API prefix. Auth routes map to the route's
// own verb (register, login, refresh, logout) on resource "session".
func ParseRoute(method, route string) ActionResource {
	path := strings.TrimPrefix(route, "/api/v1")
	path = strings.Trim(path, "/")
	if path == "" {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	segments := strings.Split(path, "/")

	if segments[0] == "auth" {
		action := "unknown"
		if len(segments) > 1 {
			action = segments[1]
		}
		return ActionResource{Action: action, Resource: "session"}
	}

	resource := singular(segments[0])
	hasID := len(segments) > 1

	var action string
	switch method {
	case "POST":
		action = "create"
	case "GET":
		if hasID {
			action = "get"
		} else {
			action = "list"
		}
	case "PUT", "PATCH":
		action = "update"
	case "DELETE":
		action = "delete"
	default:
		action = strings.ToLower(method)
	}
	return ActionResource{Action: action, Resource: resource}
}

func singular(collection string) string {
	// challenges -> challenge, participations -> participation
	if strings.HasSuffix(collection, "s") && len(collection) > 1 {
		return strings.TrimSuffix(collection, "s")
	}
	return collection
}
