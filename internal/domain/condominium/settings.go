package condominium

import "fmt"

// CalculationMethod selects how common expenses are apportioned to units.
type CalculationMethod string

const (
	// MethodArea splits expenses by each unit's aliquot percentage.
	MethodArea CalculationMethod = "m2"
	// MethodEqual splits expenses evenly across units.
	MethodEqual CalculationMethod = "equitativo"
)

func (m CalculationMethod) IsValid() bool {
	return m == MethodArea || m == MethodEqual
}

// NotificationSettings controls tenant-level notification behavior.
type NotificationSettings struct {
	Enabled            bool   `json:"enabled"`
	AIChatbotEnabled   bool   `json:"ai_chatbot_enabled"`
	WhatsAppProvider   string `json:"whatsapp_provider,omitempty"`
	WhatsAppInstanceID string `json:"whatsapp_instance_id,omitempty"`
}

// CommunicationChannels toggles the outbound channels a tenant uses.
type CommunicationChannels struct {
	WhatsAppEnabled bool `json:"whatsapp_enabled"`
	EmailEnabled    bool `json:"email_enabled"`
}

// AIConfig holds the tenant's assistant configuration.
type AIConfig struct {
	BasePrompt    string `json:"base_prompt,omitempty"`
	KnowledgeBase string `json:"knowledge_base,omitempty"`
}

// Settings is the per-tenant configuration value object.
type Settings struct {
	CalculationMethod     CalculationMethod     `json:"calculation_method"`
	Currency              string                `json:"currency"`
	Notifications         NotificationSettings  `json:"notifications"`
	CommunicationChannels CommunicationChannels `json:"communication_channels"`
	AI                    AIConfig              `json:"ai"`
}

// DefaultSettings returns the configuration applied to self-service
// provisioned tenants: equal split, USD, notifications on, chatbot off.
func DefaultSettings() Settings {
	return Settings{
		CalculationMethod: MethodEqual,
		Currency:          "USD",
		Notifications: NotificationSettings{
			Enabled:          true,
			AIChatbotEnabled: false,
		},
		CommunicationChannels: CommunicationChannels{
			WhatsAppEnabled: false,
			EmailEnabled:    true,
		},
		AI: AIConfig{
			BasePrompt: "Eres un asistente virtual para este condominio.",
		},
	}
}

// Validate checks the settings invariants.
func (s Settings) Validate() error {
	if !s.CalculationMethod.IsValid() {
		return fmt.Errorf("invalid calculation method: %s", s.CalculationMethod)
	}
	if len(s.Currency) != 3 {
		return fmt.Errorf("invalid currency code: %s", s.Currency)
	}
	return nil
}
