package wallet

import "fmt"

// Credential tells how an account is unlocked. It is either a
// PasswordCredential or a FederatedCredential.
type Credential interface {
	credential()
}

// PasswordCredential accounts are unlocked with the password of their source,
// or their own password when SourceID is empty.
type PasswordCredential struct {
	SourceID string
}

// FederatedCredential accounts are unlocked by signing in again with the
// identity provider they were created with.
type FederatedCredential struct {
	Provider string
	Issuer   string
	Subject  string
}

func (PasswordCredential) credential()  {}
func (FederatedCredential) credential() {}

const (
	credentialPassword  = "password"
	credentialFederated = "federated"
)

type credentialRecord struct {
	Kind     string
	SourceID string `json:",omitempty"`
	Provider string `json:",omitempty"`
	Issuer   string `json:",omitempty"`
	Subject  string `json:",omitempty"`
}

func encodeCredential(c Credential) credentialRecord {
	switch cred := c.(type) {
	case PasswordCredential:
		return credentialRecord{Kind: credentialPassword, SourceID: cred.SourceID}
	case FederatedCredential:
		return credentialRecord{Kind: credentialFederated, Provider: cred.Provider, Issuer: cred.Issuer, Subject: cred.Subject}
	default:
		return credentialRecord{}
	}
}

func decodeCredential(rec credentialRecord) (Credential, error) {
	switch rec.Kind {
	case credentialPassword:
		return PasswordCredential{SourceID: rec.SourceID}, nil
	case credentialFederated:
		return FederatedCredential{Provider: rec.Provider, Issuer: rec.Issuer, Subject: rec.Subject}, nil
	default:
		return nil, fmt.Errorf("unknown credential kind %q", rec.Kind)
	}
}
