package native

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qewer33/quetite/value"
)

// httpClient bounds every native HTTP call so a hung remote server
// can't block the single-threaded interpreter forever, grounded on
// std/http.go's use of net/http (stdlib-only in the teacher too, so no
// third-party HTTP client appears anywhere in the pack — see DESIGN.md).
var httpClient = &http.Client{Timeout: 15 * time.Second}

// httpMethods is the Http namespace: get/post, grounded on
// std/http.go's httpGet/httpPost builtins.
var httpMethods = []Builtin{
	{Name: "get", Arity: 1, Fn: func(args []value.Value) (value.Value, error) {
		url, err := wantStr("Http.get", args, 0)
		if err != nil {
			return nil, err
		}
		resp, err := httpClient.Get(url)
		if err != nil {
			return nil, ioErr("Http.get: %v", err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, ioErr("Http.get: %v", err)
		}
		return responseDict(resp.StatusCode, string(body)), nil
	}},
	{Name: "post", Arity: 2, Fn: func(args []value.Value) (value.Value, error) {
		url, err := wantStr("Http.post", args, 0)
		if err != nil {
			return nil, err
		}
		body, err := wantStr("Http.post", args, 1)
		if err != nil {
			return nil, err
		}
		resp, err := httpClient.Post(url, "application/json", strings.NewReader(body))
		if err != nil {
			return nil, ioErr("Http.post: %v", err)
		}
		defer resp.Body.Close()
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, ioErr("Http.post: %v", err)
		}
		return responseDict(resp.StatusCode, string(respBody)), nil
	}},
}

func responseDict(status int, body string) *value.Dict {
	d := value.NewDict()
	d.Set(value.Str("status"), value.Num(status))
	d.Set(value.Str("body"), value.Str(body))
	return d
}
