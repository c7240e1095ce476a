package api

import (
	"path/filepath"
	"strings"

	"pesalens/mpesa-csv/internal/metrics"
	"pesalens/mpesa-csv/internal/models"
	"pesalens/mpesa-csv/internal/parsererror"
	"pesalens/mpesa-csv/internal/pipeline"
	"pesalens/mpesa-csv/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// parseResponse is the JSON body returned for a successful upload.
type parseResponse struct {
	Format           string               `json:"format"`
	FormatLabel      string               `json:"formatLabel"`
	Headers          []string             `json:"headers"`
	TotalRows        int                  `json:"totalRows"`
	TransactionCount int                  `json:"transactionCount"`
	Transactions     []models.Transaction `json:"transactions"`
	Truncated        bool                 `json:"truncated"`
	Metrics          report.Summary       `json:"metrics"`
	Warnings         []string             `json:"warnings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleParse accepts a multipart CSV upload, runs the ingestion pipeline and
// returns the outcome plus derived metrics. A hard parse failure (warnings and
// zero rows) maps to 422 with the first warning as the message, matching the
// contract the upload frontends rely on.
func (s *Server) handleParse(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error: "missing multipart field 'file'",
		})
	}

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" && ext != ".txt" {
		vErr := &parsererror.ValidationError{
			FilePath: header.Filename,
			Reason:   "expected a .csv upload",
		}
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: vErr.Error()})
	}

	file, err := header.Open()
	if err != nil {
		s.log.WithError(err).Error("Failed to open uploaded file")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error: "failed to read upload",
		})
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close upload")
		}
	}()

	outcome := pipeline.Parse(file)
	if outcome.Failed() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{
			Error: outcome.Errors[0],
		})
	}

	m := metrics.Compute(outcome.Transactions)

	transactions := outcome.Transactions
	truncated := false
	if limit := s.cfg.Server.MaxTxEchoed; limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
		truncated = true
	}

	s.log.WithFields(logrus.Fields{
		"file":         header.Filename,
		"format":       outcome.Format,
		"transactions": len(outcome.Transactions),
	}).Info("Parsed upload")

	return c.JSON(parseResponse{
		Format:           outcome.Format,
		FormatLabel:      outcome.FormatLabel,
		Headers:          outcome.Headers,
		TotalRows:        outcome.TotalRows,
		TransactionCount: len(outcome.Transactions),
		Transactions:     transactions,
		Truncated:        truncated,
		Metrics:          report.Summarize(outcome, m),
		Warnings:         outcome.Errors,
	})
}
