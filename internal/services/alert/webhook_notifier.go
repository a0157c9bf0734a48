package alert

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

// WebhookNotifier POSTs triggered alerts to a configured URL. Delivery
// is fire-and-forget: failures are logged and never retried.
type WebhookNotifier struct {
	client *resty.Client
	url    string
	log    *logrus.Logger
}

func NewWebhookNotifier(url string, log *logrus.Logger) *WebhookNotifier {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Sneaker-Matrix/1.0")

	return &WebhookNotifier{client: client, url: url, log: log}
}

func (w *WebhookNotifier) NotifyAlert(a models.PriceAlert, currentPrice float64) {
	go func() {
		resp, err := w.client.R().
			SetBody(map[string]interface{}{
				"type":          "price_alert",
				"alert":         a,
				"current_price": currentPrice,
				"message": fmt.Sprintf("Price Alert: %s dropped to $%.2f (target $%.2f)",
					a.SneakerModel, currentPrice, a.TargetPrice),
			}).
			Post(w.url)
		if err != nil {
			w.log.WithError(err).Warn("Alert webhook delivery failed")
			return
		}
		if resp.IsError() {
			w.log.Warnf("Alert webhook returned %d", resp.StatusCode())
		}
	}()
}
