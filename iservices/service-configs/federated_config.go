package service_configs

type FederatedConfig struct {
	// Provider is shown to the user, e.g. "google"
	Provider string `toml:",omitempty"`
	// AuthURL is the provider login page the user is sent to
	AuthURL  string `toml:",omitempty"`
	ClientID string `toml:",omitempty"`
	Issuer   string `toml:",omitempty"`
	// Listen is the local address receiving the login redirect
	Listen     string `toml:",omitempty"`
	SigningKey string `toml:",omitempty"`
}
