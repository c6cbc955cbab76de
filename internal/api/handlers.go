// Package api exposes the triage pipeline over HTTP.
package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/northhealth/triage/internal/domain"
	"github.com/northhealth/triage/internal/processor"
	"github.com/northhealth/triage/internal/triage"
)

// textColumnCandidates are checked in order against CSV headers; the first
// present column supplies the complaint text.
var textColumnCandidates = []string{
	"text", "Text", "symptoms", "Symptoms", "issue", "Issue",
	"concern", "Concern", "description", "Description",
}

// Handler handles HTTP requests for the triage API
type Handler struct {
	pipeline       *triage.Pipeline
	batchProcessor *processor.BatchProcessor
	maxBatchTexts  int
	maxFileRows    int
	serviceName    string
	serviceVersion string
	logger         Logger
}

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// NewHandler creates a new API handler
func NewHandler(
	pipeline *triage.Pipeline,
	batchProcessor *processor.BatchProcessor,
	maxBatchTexts int,
	maxFileRows int,
	serviceName string,
	serviceVersion string,
	logger Logger,
) *Handler {
	return &Handler{
		pipeline:       pipeline,
		batchProcessor: batchProcessor,
		maxBatchTexts:  maxBatchTexts,
		maxFileRows:    maxFileRows,
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		logger:         logger,
	}
}

// Analyze handles POST /api/v1/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.pipeline.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("Analyze request rejected", "reason", validationErr.Reason)
			c.JSON(http.StatusBadRequest, AnalyzeResponse{
				Result: result,
				Error:  validationErr.Error(),
			})
			return
		}
		h.logger.Error("Analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Text analyzed",
		"urgency", result.UrgencyLevel,
		"emergency", result.Emergency.IsEmergency,
		"sentiment", result.Sentiment.Label,
	)

	c.JSON(http.StatusOK, AnalyzeResponse{Result: result})
}

// AnalyzeBatch handles POST /api/v1/analyze/batch
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Texts) > h.maxBatchTexts {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("maximum %d texts allowed per batch", h.maxBatchTexts),
		})
		return
	}

	h.logger.Info("Batch analyzing texts", "batch_size", len(req.Texts))

	results := h.batchProcessor.Process(c.Request.Context(), req.Texts)
	summary := summarize(results)

	h.logger.Info("Batch analysis completed",
		"total", summary.Total,
		"valid", summary.Valid,
		"errors", summary.Errors,
	)

	c.JSON(http.StatusOK, BatchAnalyzeResponse{
		Results: results,
		Summary: summary,
	})
}

// AnalyzeFile handles POST /api/v1/analyze/file
func (h *Handler) AnalyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only CSV files are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	texts, column, originalRows, err := h.extractTexts(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Analyzing CSV file",
		"filename", fileHeader.Filename,
		"column", column,
		"rows", len(texts),
		"original_rows", originalRows,
	)

	results := h.batchProcessor.Process(c.Request.Context(), texts)

	sample := results
	if len(sample) > 5 {
		sample = sample[:5]
	}

	c.JSON(http.StatusOK, FileAnalyzeResponse{
		Summary:          summarize(results),
		ProcessedRows:    len(texts),
		OriginalFileRows: originalRows,
		SampleResults:    sample,
		ColumnUsed:       column,
	})
}

// extractTexts parses the CSV, picks the text column, and returns the
// non-empty values from the first maxFileRows rows.
func (h *Handler) extractTexts(r io.Reader) (texts []string, column string, originalRows int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, "", 0, errors.New("failed to parse CSV header")
	}

	columnIdx := -1
	for _, candidate := range textColumnCandidates {
		for i, name := range header {
			if strings.TrimSpace(name) == candidate {
				column = candidate
				columnIdx = i
				break
			}
		}
		if columnIdx >= 0 {
			break
		}
	}
	if columnIdx < 0 {
		return nil, "", 0, fmt.Errorf("no text column found, available columns: %v", header)
	}

	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, "", 0, fmt.Errorf("failed to parse CSV row %d", originalRows+1)
		}
		originalRows++
		if originalRows > h.maxFileRows {
			continue // keep counting rows, stop collecting
		}
		if columnIdx >= len(record) {
			continue
		}
		text := strings.TrimSpace(record[columnIdx])
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}

	if len(texts) == 0 {
		return nil, "", originalRows, errors.New("no valid texts found in the file")
	}

	return texts, column, originalRows, nil
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.serviceName,
		"version": h.serviceVersion,
	})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ready",
		"model_loaded": h.pipeline.ModelLoaded(),
	})
}
