package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
)

// FrontendTemplatesGlob is the glob of the frontend templates relative to a package two levels below the repo root
const FrontendTemplatesGlob = "../../templates/frontend/*.gohtml"

// UnmarshallResponse unmarshalls the reponse in res and stores it in out
func UnmarshallResponse(res *bytes.Buffer, out interface{}) error {
	actualRes, err := io.ReadAll(res)
	if err != nil {
		return err
	}

	return json.Unmarshal(actualRes, out)
}

// AddRequestWithFormParamsToCtx attaches a request with given method and form params to the context
func AddRequestWithFormParamsToCtx(ctx *gin.Context, method string, params map[string]string) {
	data := url.Values{}
	for key, val := range params {
		data.Add(key, val)
	}

	AddRequestWithFormValuesToCtx(ctx, method, data)
}

// AddRequestWithFormValuesToCtx is AddRequestWithFormParamsToCtx for multi-valued form fields
func AddRequestWithFormValuesToCtx(ctx *gin.Context, method string, data url.Values) {
	req := httptest.NewRequest(method, "/test", bytes.NewBufferString(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; param=value")
	ctx.Request = req
}

// AddRequestWithQueryToCtx attaches a GET request with given query params to the context
func AddRequestWithQueryToCtx(ctx *gin.Context, path string, params map[string]string) {
	query := url.Values{}
	for key, val := range params {
		query.Add(key, val)
	}

	target := path
	if len(query) > 0 {
		target = path + "?" + query.Encode()
	}
	ctx.Request = httptest.NewRequest("GET", target, nil)
}

// AddUrlParamsToCtx attaches a request with given method and url params to the context
func AddUrlParamsToCtx(ctx *gin.Context, params map[string]string) {
	p := gin.Params{}
	for key, val := range params {
		p = append(p, gin.Param{
			Key:   key,
			Value: val,
		})
	}

	ctx.Params = p
}

// AddCookiesToCtx adds the given cookies to the request attached to ctx
func AddCookiesToCtx(ctx *gin.Context, cookies map[string]string) {
	if ctx.Request == nil {
		ctx.Request = httptest.NewRequest("GET", "/test", nil)
	}
	for name, value := range cookies {
		ctx.Request.Header.Add("Cookie", name+"="+url.QueryEscape(value))
	}
}

// ResponseCookie returns the value of the named cookie set on the recorded response
func ResponseCookie(w *httptest.ResponseRecorder, name string) (string, bool) {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			value, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				value = cookie.Value
			}
			return value, true
		}
	}
	return "", false
}

// BodyContains reports whether the recorded body contains every given substring
func BodyContains(w *httptest.ResponseRecorder, substrings ...string) bool {
	body := w.Body.String()
	for _, s := range substrings {
		if !strings.Contains(body, s) {
			return false
		}
	}
	return true
}

// SetEnvVars sets given environment variables and provides a callback function to restore the variables to their initial values
func SetEnvVars(vars map[string]string) (restoreVars func()) {
	initialValues := map[string]string{}
	unsetVars := map[string]bool{}

	for name, value := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		} else {
			unsetVars[name] = true
		}

		err := os.Setenv(name, value)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}

		for name := range unsetVars {
			err := os.Unsetenv(name)
			if err != nil {
				panic(err)
			}
		}
	}
}

// UnsetVars unsets given environment variables and provides a callback function to restore the variables to their initial values
func UnsetVars(vars ...string) (restoreVars func()) {
	initialValues := map[string]string{}
	for _, name := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		}

		err := os.Unsetenv(name)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}
	}
}

// RouterGroupMatcher matches gin router groups with the given base path
type RouterGroupMatcher struct {
	Path string
}

// Matches implements the gomock.Matcher interface
func (m RouterGroupMatcher) Matches(x interface{}) bool {
	if x == nil {
		return false
	}
	basePath := reflect.ValueOf(x).MethodByName("BasePath")
	if !basePath.IsValid() {
		return false
	}
	values := basePath.Call(nil)
	if len(values) != 1 || values[0].Kind() != reflect.String {
		return false
	}
	return values[0].String() == m.Path
}

func (m RouterGroupMatcher) String() string {
	return fmt.Sprintf("router group's base path is %s", m.Path)
}
