package audit

import "testing"

func TestParseRoute(t *testing.T) {
	cases := []struct {
		method string
		route  string
		want   ActionResource
	}{
		{"POST", "/api/v1/participations", ActionResource{Action: "create", Resource: "participation"}},
		{"GET", "/api/v1/participations", ActionResource{Action: "list", Resource: "participation"}},
		{"GET", "/api/v1/participations/:id", ActionResource{Action: "get", Resource: "participation"}},
		{"POST", "/api/v1/challenges", ActionResource{Action: "create", Resource: "challenge"}},
		{"GET", "/api/v1/challenges/:id", ActionResource{Action: "get", Resource: "challenge"}},
		{"POST", "/api/v1/auth/login", ActionResource{Action: "login", Resource: "session"}},
		{"POST", "/api/v1/auth/register", ActionResource{Action: "register", Resource: "session"}},
		{"POST", "/api/v1/auth/refresh", ActionResource{Action: "refresh", Resource: "session"}},
		{"POST", "/api/v1/auth/logout", ActionResource{Action: "logout", Resource: "session"}},
		{"GET", "/api/v1/audit-logs", ActionResource{Action: "list", Resource: "audit-log"}},
		{"GET", "", ActionResource{Action: "unknown", Resource: "unknown"}},
	}
	for _, tc := range cases {
		got := ParseRoute(tc.method, tc.route)
		if got != tc.want {
			t.Errorf("ParseRoute(%s, %s) = %+v, want %+v", tc.method, tc.route, got, tc.want)
		}
	}
}
