package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"text/template"

	"github.com/coschain/cos-wallet/node"
)

const ConfigFileName = "config.toml"

const DefaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

DataDir = "{{ .DataDir }}"
LogLevel = "{{ .LogLevel }}"
LogAge = {{ .LogAge }}

[wallet]

AutoLockMinutes = {{ .Wallet.AutoLockMinutes }}
PromptAttempts = {{ .Wallet.PromptAttempts }}
HDPath = "{{ .Wallet.HDPath }}"

[federated]

Provider = "{{ .Federated.Provider }}"
AuthURL = "{{ .Federated.AuthURL }}"
ClientID = "{{ .Federated.ClientID }}"
Issuer = "{{ .Federated.Issuer }}"
Listen = "{{ .Federated.Listen }}"
SigningKey = "{{ .Federated.SigningKey }}"
`

var configTemplate = template.Must(template.New("configFileTemplate").Parse(DefaultConfigTemplate))

func WriteWalletConfigFile(configDirPath string, config node.Config, mode os.FileMode) error {
	var buffer bytes.Buffer
	if err := configTemplate.Execute(&buffer, config); err != nil {
		return err
	}
	configPath := filepath.Join(configDirPath, ConfigFileName)
	return ioutil.WriteFile(configPath, buffer.Bytes(), mode)
}
