package server

import (
	swagger "github.com/Flussen/swagger-fiber-v3"
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/docs"
	"github.com/swaggo/swag"
)

const docURL = "/api/docs/doc.json"

// RegisterDocs serves the OpenAPI document registered by the docs package
// and the swagger UI that reads it.
func RegisterDocs(app *fiber.App) {
	app.Get(docURL, func(fctx fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}

		fctx.Type("json", "utf-8")
		return fctx.SendString(doc)
	})

	app.Get("/api/docs/*", swagger.New(swagger.Config{URL: docURL}))
}
