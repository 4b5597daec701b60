package valuation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bizval-service/internal/common/errors"
	"bizval-service/internal/common/logger"
	"bizval-service/internal/common/metrics"
	"bizval-service/internal/email"
	"bizval-service/internal/llm"
)

// Config holds the handler's fixed delivery settings.
type Config struct {
	FromEmail     string
	Subject       string
	AssetsBaseURL string
}

func (c *Config) Validate() error {
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	if c.Subject == "" {
		return fmt.Errorf("email subject is required")
	}
	if c.AssetsBaseURL == "" {
		return fmt.Errorf("assets base url is required")
	}
	return nil
}

// Handler drives one request through validation, the model call,
// normalization, rendering, and email dispatch. Collaborators are injected
// once at startup so tests can substitute doubles.
type Handler struct {
	config    *Config
	generator llm.Generator
	sender    email.Sender
	logger    logger.Logger
}

func NewHandler(config *Config, generator llm.Generator, sender email.Sender, log logger.Logger) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid handler config: %w", err)
	}
	return &Handler{
		config:    config,
		generator: generator,
		sender:    sender,
		logger:    log,
	}, nil
}

// Handle processes one valuation request. Exactly one response is produced:
// 400 for validation failures, 500 for model failures or unparseable
// replies, and 200 once the email stage is reached. Email delivery errors
// are logged and swallowed; the caller cannot act on them.
func (h *Handler) Handle(c *gin.Context) {
	start := time.Now()
	log := h.logger.WithFields(map[string]interface{}{
		"requestId": uuid.NewString(),
	})

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.respondError(c, log, start, errors.NewInternalError(err))
		return
	}

	if stdErr := ValidateRequestBody(body); stdErr != nil {
		h.respondError(c, log, start, stdErr)
		return
	}

	var req ValuationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondError(c, log, start, errors.NewInternalError(err))
		return
	}

	log = log.WithFields(map[string]interface{}{
		"businessType": req.BusinessType,
	})
	log.Info("processing valuation request", nil)

	prompt := BuildPrompt(&req)

	replyText, err := h.generator.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		metrics.ModelCalls.WithLabelValues("failure").Inc()
		h.respondError(c, log, start, errors.NewModelCallFailedError(err))
		return
	}
	metrics.ModelCalls.WithLabelValues("success").Inc()

	raw, err := llm.ParseObject(replyText)
	if err != nil {
		h.respondError(c, log, start, errors.NewModelReplyInvalidError(err))
		return
	}

	result := Normalize(raw, &req)
	category := SelectCategory(raw["imageCategory"], req.BusinessType)

	html, err := RenderEmail(result, &req, ThumbnailURL(h.config.AssetsBaseURL, category), time.Now())
	if err != nil {
		h.respondError(c, log, start, errors.NewInternalError(err))
		return
	}

	// Delivery failure never changes the HTTP outcome. The caller's UI
	// cannot act on it, so it is logged server-side only.
	sendErr := h.sender.Send(c.Request.Context(), email.Message{
		From:     h.config.FromEmail,
		To:       req.Email,
		Subject:  h.config.Subject,
		HTMLBody: html,
	})
	if sendErr != nil {
		metrics.EmailSends.WithLabelValues("failure").Inc()
		stdErr := errors.NewEmailSendFailedError(sendErr)
		log.WithError(stdErr).Error("email delivery failed", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"to":        req.Email,
		})
	} else {
		metrics.EmailSends.WithLabelValues("success").Inc()
		log.Info("valuation email sent", map[string]interface{}{
			"to":       req.Email,
			"category": string(category),
		})
	}

	h.respond(c, start, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) respondError(c *gin.Context, log logger.Logger, start time.Time, stdErr *errors.StandardError) {
	status := errors.HTTPStatus(stdErr.Code)

	log.WithError(stdErr).Error("valuation request failed", map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
		"status":    status,
	})

	h.respond(c, start, status, gin.H{"error": errors.PublicMessage(stdErr.Code)})
}

func (h *Handler) respond(c *gin.Context, start time.Time, status int, body interface{}) {
	label := fmt.Sprintf("%d", status)
	metrics.ValuationRequests.WithLabelValues(label).Inc()
	metrics.RequestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	c.JSON(status, body)
}
