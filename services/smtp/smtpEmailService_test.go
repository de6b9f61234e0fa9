package smtp

import (
	"fmt"
	"net/smtp"
	"testing"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/environment"
	mock_utils "github.com/exiby/exiby_admin/mocks/utils"
	"github.com/exiby/exiby_admin/services"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	_testEmailTemplate = "./testEmailTemplate.txt"
	testServer         = "localhost"
	testPort           = "1234"
	testUsername       = "username"
	testPassword       = "password"
)

var testAuth = smtp.PlainAuth("", testUsername, testPassword, testServer)

type emailTestSetup struct {
	ctrl           *gomock.Controller
	emailService   services.EmailService
	mockSMTPClient *mock_utils.MockSMTPClient
}

var testCfg = config.AppConfig{
	Email: config.EmailConfig{
		NoreplyEmailAddr:    "bob@test.com",
		NoreplyEmailName:    "Bob the Tester",
		TestEmailSubjPrefix: "[Test]",
	},
}

func setupEmailTest(t *testing.T) *emailTestSetup {
	templatePreviewEmailTemplatePath = _testEmailTemplate

	ctrl := gomock.NewController(t)
	mockSMTPClient := mock_utils.NewMockSMTPClient(ctrl)
	testCfgCopy := testCfg

	env := environment.NewEnvWithVars(map[string]string{
		environment.SMTPHost:     testServer,
		environment.SMTPPort:     testPort,
		environment.SMTPUsername: testUsername,
		environment.SMTPPassword: testPassword,
	})

	emailService, err := NewSMTPEmailService(zap.NewNop(), &testCfgCopy, env, mockSMTPClient)
	assert.NoError(t, err)

	return &emailTestSetup{
		ctrl:           ctrl,
		emailService:   emailService,
		mockSMTPClient: mockSMTPClient,
	}
}

func Test_NewSMTPEmailService__should_return_error_when_template_path_is_incorrect(t *testing.T) {
	templatePreviewEmailTemplatePath = "invalid path"

	service, err := NewSMTPEmailService(nil, nil, nil, nil)
	assert.Error(t, err)
	assert.Nil(t, service)
}

func Test_SendEmail__should_send_correct_message_to_smtp(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	setup.mockSMTPClient.EXPECT().SendEmail(fmt.Sprintf("%s:%s", testServer, testPort), testAuth,
		"bob@test.com", []string{"rob@test.com"}, gomock.Any()).Return(nil).Times(1)

	err := setup.emailService.SendEmail("test email", "test email body", "test email body",
		"Bob the Tester", "bob@test.com", "Rob the Tester", "rob@test.com")

	assert.NoError(t, err)
}

func Test_SendEmail__should_return_error_when_sending_email_fails(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	setup.mockSMTPClient.EXPECT().SendEmail(fmt.Sprintf("%s:%s", testServer, testPort), testAuth,
		"bob@test.com", []string{"rob@test.com"}, gomock.Any()).Return(errors.New("smtp err")).Times(1)

	err := setup.emailService.SendEmail("test email", "test email body", "test email body",
		"Bob the Tester", "bob@test.com", "Rob the Tester", "rob@test.com")

	assert.Error(t, err)
}

func Test_SendTemplatePreview__should_send_rendered_template(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	wantMessage := "From: Bob the Tester <bob@test.com>\n" +
		"To: rob@test.com <rob@test.com>\n" +
		"Subject: [Test] Hello John\n" +
		"Mime-Version: 1.0;\n" +
		"Content-Type: text/html; charset=\"UTF-8\";\n" +
		"Content-Transfer-Encoding: 8bit;\n\n" +
		"Welcome: <p>Hi John</p>\n\n"

	setup.mockSMTPClient.EXPECT().SendEmail(fmt.Sprintf("%s:%s", testServer, testPort), testAuth,
		testCfg.Email.NoreplyEmailAddr, []string{"rob@test.com"}, []byte(wantMessage)).Return(nil).Times(1)

	err := setup.emailService.SendTemplatePreview(entities.EmailTemplate{
		Name:    "Welcome",
		Subject: "Hello {{first_name}}",
		Content: "<p>Hi {{first_name}}</p>",
	}, map[string]string{"first_name": "John"}, "rob@test.com")

	assert.NoError(t, err)
}

func Test_SendTemplatePreview__should_return_error_when_sending_email_fails(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	setup.mockSMTPClient.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp err")).Times(1)

	err := setup.emailService.SendTemplatePreview(entities.EmailTemplate{Content: "hi"}, nil, "rob@test.com")

	assert.Error(t, err)
}
