package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/services"
)

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("nutriclin-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}

// ExportCSV streams the patient's measurement history with the derived
// indicator columns already computed.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	rows, err := handler.exportService.BuildCSVRows(patientID, handler.location)
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}

	buffer := bytes.Buffer{}
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "export failed")
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "export failed")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "export failed")
	}

	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", buildExportFilename(handler.now(), "csv"))
	return c.Send(buffer.Bytes())
}

// ExportJSON returns the complete patient record as one document.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	bundle, err := handler.exportService.BuildBundle(patientID, handler.now())
	if err != nil {
		return notFoundOrStoreError(c, err, "patient not found")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSONCharsetUTF8, buildExportFilename(handler.now(), "json"))
	return c.JSON(bundle)
}
