package report_service

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/invopop/jsonschema"
)

// SlidesSchema describes the slide list the sanitizer produces.
func SlidesSchema() *jsonschema.Schema {
	var reflector = jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect([]app.Slide{})
}
