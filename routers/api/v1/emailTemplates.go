package v1

import (
	"net/http"

	"github.com/exiby/exiby_admin/routers/api/models"
	"github.com/exiby/exiby_admin/utils/templatevars"
	"github.com/gin-gonic/gin"
)

// POST: /api/v1/email-templates/preview
// x-www-form-urlencoded or json
// Request:  subject string
//           content string
// Response: status int
//           error string
//           subject string
//           variables []string
//           html string
func (r *apiV1Router) PreviewEmailTemplate(ctx *gin.Context) {
	var req previewEmailTemplateReq
	if err := ctx.ShouldBind(&req); err != nil {
		models.SendAPIError(ctx, http.StatusBadRequest, "content must be provided")
		return
	}

	samples := templatevars.MergeSamples(r.cfg.EmailTemplates.SampleValues)
	ctx.JSON(http.StatusOK, previewEmailTemplateRes{
		Response:  models.Response{Status: http.StatusOK},
		Subject:   templatevars.Substitute(req.Subject, samples),
		Variables: templatevars.Extract(req.Content),
		HTML:      templatevars.Preview(req.Content, samples),
	})
}
