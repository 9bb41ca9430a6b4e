package service_configs

type WalletConfig struct {
	// AutoLockMinutes re-locks unlocked accounts after that many idle minutes, 0 disables it
	AutoLockMinutes int `toml:",omitempty"`
	// PromptAttempts bounds password attempts of one terminal prompt
	PromptAttempts int `toml:",omitempty"`
	HDPath         string `toml:",omitempty"`
}
