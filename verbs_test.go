package rapporthttp

import "testing"

func TestVerbAdapters(t *testing.T) {
	client := New(&fakeSocket{})

	tests := []struct {
		name string
		make func(string) *Request
		want string
	}{
		{"Get", client.Get, MethodGet},
		{"Post", client.Post, MethodPost},
		{"Put", client.Put, MethodPut},
		{"Patch", client.Patch, MethodPatch},
		{"Delete", client.Delete, MethodDelete},
		{"Head", client.Head, MethodHead},
		{"Options", client.Options, MethodOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.make("/route")
			if req.method != tt.want {
				t.Errorf("Expected method %q, got %q", tt.want, req.method)
			}
			if req.url != "/route" {
				t.Errorf("Expected url /route, got %q", req.url)
			}
			if !req.expectResponse {
				t.Error("Expected expectResponse true by default")
			}
		})
	}
}

func TestVerbAdaptersValidate(t *testing.T) {
	client := New(&fakeSocket{})
	mustPanicInvalidArgument(t, func() { client.Get("") })
}
