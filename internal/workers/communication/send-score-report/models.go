// internal/workers/communication/send-score-report/models.go
package sendscorereport

type Input struct {
	UserID            string  `json:"userId,omitempty"`
	RecipientEmail    string  `json:"recipientEmail"`
	RecipientPhone    string  `json:"recipientPhone,omitempty"`
	SendSMS           bool    `json:"sendSms,omitempty"`
	OccupationName    string  `json:"occupationName"`
	AIR               float64 `json:"aiR"`
	VR                float64 `json:"vr"`
	HR                float64 `json:"hr"`
	SynergyPercentage float64 `json:"synergyPercentage,omitempty"`
	BestPathway       string  `json:"bestPathway,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"`
	EmailSent      bool   `json:"emailSent"`
	SMSSent        bool   `json:"smsSent"`
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Statuses
const (
	StatusSent     = "sent"
	StatusPartial  = "partial"
	StatusDisabled = "disabled"
)
