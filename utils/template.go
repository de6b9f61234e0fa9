package utils

import (
	"html/template"
	"os"

	"github.com/pkg/errors"
)

func LoadTemplate(templateName string, templatePath string) (*template.Template, error) {
	templateStr, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read template file %s", templatePath)
	}

	template, err := template.New(templateName).Parse(string(templateStr))
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse template %s", templateName)
	}

	return template, nil
}
