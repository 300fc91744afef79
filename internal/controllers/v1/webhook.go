package v1

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/centavo/backend/internal/config"
	"github.com/centavo/backend/internal/extract"
	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// replyApology is sent whenever a message could not be turned into a
// transaction. The webhook is a one-shot delivery with no retry, so the
// handler always replies and never answers with an error status.
const replyApology = "Oops! I didn't get that. Try: 'Spent 10 at the bakery'"

// twimlResponse is the reply envelope the messaging transport expects.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// RegisterWebhookRoutes registers the routes for inbound chat messages
// with the RouterGroup that is passed.
func RegisterWebhookRoutes(r *gin.RouterGroup, cfg *config.Config, extractor *extract.Extractor) {
	r.OPTIONS("/whatsapp", OptionsWebhook)
	r.POST("/whatsapp", WhatsappWebhook(cfg, extractor))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Webhook
// @Success		204
// @Router			/v1/webhook/whatsapp [options]
func OptionsWebhook(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Ingest a chat message
// @Description	Extracts a transaction from a free-text chat message and saves it. Always returns a reply envelope, even when extraction fails.
// @Tags			Webhook
// @Accept			x-www-form-urlencoded
// @Produce		xml
// @Success		200		{object}	twimlResponse
// @Param			Body	formData	string	true	"The message text"
// @Param			From	formData	string	true	"The sender identifier of the messaging channel"
// @Router			/v1/webhook/whatsapp [post]
func WhatsappWebhook(cfg *config.Config, extractor *extract.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := c.PostForm("Body")
		from := c.PostForm("From")

		log.Info().Str("from", from).Msg("chat message received")

		reply := func(text string) {
			c.XML(http.StatusOK, twimlResponse{Message: text})
		}

		user, err := webhookUser(cfg)
		if err != nil {
			log.Warn().Err(err).Str("from", from).Msg("could not attribute chat message")
			reply(replyApology)
			return
		}

		categories, err := user.Categories(models.DB)
		if err != nil {
			log.Warn().Err(err).Msg("could not load categories for chat message")
			reply(replyApology)
			return
		}

		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, category.Name)
		}

		candidate, err := extractor.Extract(c.Request.Context(), body, names)
		if err != nil {
			log.Warn().Err(err).Msg("could not extract a transaction from chat message")
			reply(replyApology)
			return
		}

		category, err := models.ResolveCategory(models.DB, user.ID, candidate.CategoryName, models.FallbackFirstByStableOrder{})
		if err != nil {
			log.Warn().Err(err).Msg("could not resolve a category for chat message")
			reply(replyApology)
			return
		}

		transaction := models.Transaction{
			Description: candidate.Description,
			Amount:      candidate.Amount,
			Kind:        candidate.Kind,
			Date:        time.Now().UTC(),
			UserID:      user.ID,
			CategoryID:  &category.ID,
		}

		err = models.DB.Create(&transaction).Error
		if err != nil {
			log.Warn().Err(err).Msg("could not save transaction from chat message")
			reply(replyApology)
			return
		}

		reply(fmt.Sprintf("✅ *Saved!*\n📝 %s\n💰 %s\n📂 %s",
			transaction.Description, transaction.Amount.StringFixed(2), category.Name))
	}
}

// webhookUser returns the user inbound chat messages are attributed to.
func webhookUser(cfg *config.Config) (models.User, error) {
	if cfg.WebhookUserEmail == "" {
		return models.User{}, fmt.Errorf("WEBHOOK_USER_EMAIL is not configured")
	}

	var user models.User
	err := models.DB.First(&user, "email = ?", cfg.WebhookUserEmail).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
