package sendgrid

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	_sendgridAPIKey    = "testkey"
	_testEmailTemplate = "testEmailTemplate.txt"
)

type response struct {
	message string
	status  int
}

func getTestClient(t *testing.T, expectedRequestBody string, wantResponse response) (*sendgrid.Client, *httptest.Server) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(expectedRequestBody) != 0 {
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, expectedRequestBody, string(body))
		}
		w.WriteHeader(wantResponse.status)
		_, _ = w.Write([]byte(wantResponse.message))
	}))

	req := sendgrid.GetRequest(_sendgridAPIKey, "/", server.URL)
	req.Method = http.MethodPost
	client := sendgrid.Client{
		Request: req,
	}

	return &client, server
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Email: config.EmailConfig{
			NoreplyEmailName:    "Bob the Tester",
			NoreplyEmailAddr:    "bob@test.com",
			TestEmailSubjPrefix: "[Test]",
		},
	}
}

func Test_NewSendgridEmailService__should_return_error_when_template_path_is_incorrect(t *testing.T) {
	templatePreviewEmailTemplatePath = "invalid path"

	service, err := NewSendgridEmailService(nil, nil, nil)
	assert.Error(t, err)
	assert.Nil(t, service)
}

func Test_SendEmail__should_send_correct_message_to_sendgrid(t *testing.T) {
	templatePreviewEmailTemplatePath = _testEmailTemplate

	client, server := getTestClient(t, `{"from":{"name":"Bob the Tester","email":"bob@test.com"},"subject":"test email","personalizations":[{"to":[{"name":"Rob the Tester","email":"rob@test.com"}]}],"content":[{"type":"text/plain","value":"test email body"},{"type":"text/html","value":"test email body"}]}`,
		response{
			status: http.StatusAccepted,
		})
	defer server.Close()

	service, err := NewSendgridEmailService(zap.NewNop(), nil, client)
	assert.NoError(t, err)

	err = service.SendEmail("test email", "test email body", "test email body",
		"Bob the Tester", "bob@test.com", "Rob the Tester", "rob@test.com")

	assert.NoError(t, err)
}

func Test_SendEmail__should_return_error_when_sendgrid_rejects_request(t *testing.T) {
	templatePreviewEmailTemplatePath = _testEmailTemplate

	client, server := getTestClient(t, "",
		response{
			status: http.StatusUnauthorized,
		})
	defer server.Close()

	service, err := NewSendgridEmailService(zap.NewNop(), nil, client)
	assert.NoError(t, err)

	err = service.SendEmail("test email", "test email body", "test email body",
		"Bob the Tester", "bob@test.com", "Rob the Tester", "rob@test.com")

	assert.Equal(t, services.ErrSendgridRejectedRequest, errors.Cause(err))
}

func Test_SendTemplatePreview__should_send_rendered_template(t *testing.T) {
	templatePreviewEmailTemplatePath = _testEmailTemplate

	var sent struct {
		Subject string `json:"subject"`
		Content []struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"content"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	req := sendgrid.GetRequest(_sendgridAPIKey, "/", server.URL)
	req.Method = http.MethodPost

	service, err := NewSendgridEmailService(zap.NewNop(), testConfig(), &sendgrid.Client{Request: req})
	assert.NoError(t, err)

	err = service.SendTemplatePreview(entities.EmailTemplate{
		Name:    "Welcome",
		Subject: "Hello {{first_name}}",
		Content: "<p>Hi {{first_name}}</p>",
	}, map[string]string{"first_name": "John"}, "rob@test.com")

	assert.NoError(t, err)
	assert.Equal(t, "[Test] Hello John", sent.Subject)
	assert.Len(t, sent.Content, 1)
	assert.Equal(t, "text/html", sent.Content[0].Type)
	assert.Equal(t, "Welcome: <p>Hi John</p>\n", sent.Content[0].Value)
}
