package wallet

import (
	"crypto/ecdsa"
	"encoding/json"
	"time"
)

type AccountType string

const (
	MnemonicDerived AccountType = "mnemonic-derived"
	Imported        AccountType = "imported"
	Federated       AccountType = "federated"
)

const mnemonicSource = "mnemonic"

// AccountSource holds the encrypted entropy accounts are derived from.
type AccountSource struct {
	ID        string
	Type      string
	Key       EncryptedKey
	NextIndex uint32
	CreatedAt int64
}

type Account struct {
	ID      string
	Type    AccountType
	Address string
	PubKey  string

	// mnemonic-derived accounts only
	SourceID       string `json:",omitempty"`
	DerivationPath string `json:",omitempty"`

	// imported accounts only
	Key *EncryptedKey `json:",omitempty"`

	Credential Credential `json:"-"`
	CreatedAt  int64
}

// PrivAccount is an unlocked account together with its signing key.
type PrivAccount struct {
	Account
	PrivKey *ecdsa.PrivateKey
	Expire  time.Time
}

type accountAlias Account

type accountRecord struct {
	*accountAlias
	Credential credentialRecord
}

func (a *Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountRecord{
		accountAlias: (*accountAlias)(a),
		Credential:   encodeCredential(a.Credential),
	})
}

func (a *Account) UnmarshalJSON(data []byte) error {
	rec := accountRecord{accountAlias: (*accountAlias)(a)}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	cred, err := decodeCredential(rec.Credential)
	if err != nil {
		return err
	}
	a.Credential = cred
	return nil
}
