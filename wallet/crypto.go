package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/coschain/cos-wallet/common/constants"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	PasswordLength = 32
	saltLength     = 16

	StandardScryptN = 1 << 15
	scryptR         = 8
	scryptP         = 1
)

// EncryptedKey is the at-rest form of a secret, sealed with a password.
type EncryptedKey struct {
	Cipher     string // a cipher algorithm from aes
	CipherText string // base64 sealed secret
	Iv         string // base64 gcm nonce
	Salt       string // base64 scrypt salt
	KdfN       int
	Version    uint8 // version of format
}

func passphraseKey(passphrase, salt []byte, n int) ([]byte, error) {
	return scrypt.Key(passphrase, salt, n, scryptR, scryptP, PasswordLength)
}

func EncryptData(data, passphrase []byte, scryptN int) (*EncryptedKey, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	key, err := passphraseKey(passphrase, salt, scryptN)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	return &EncryptedKey{
		Cipher:     constants.KeyFileCipher,
		CipherText: base64.StdEncoding.EncodeToString(gcm.Seal(nil, iv, data, nil)),
		Iv:         base64.StdEncoding.EncodeToString(iv),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		KdfN:       scryptN,
		Version:    constants.KeyFileVersion,
	}, nil
}

// DecryptData returns ErrWrongPassword when the passphrase does not open the key.
func DecryptData(k *EncryptedKey, passphrase []byte) ([]byte, error) {
	if k.Version != constants.KeyFileVersion || k.Cipher != constants.KeyFileCipher {
		return nil, errors.Errorf("unsupported key format %s v%d", k.Cipher, k.Version)
	}
	salt, err := base64.StdEncoding.DecodeString(k.Salt)
	if err != nil {
		return nil, errors.Wrap(err, "salt")
	}
	iv, err := base64.StdEncoding.DecodeString(k.Iv)
	if err != nil {
		return nil, errors.Wrap(err, "iv")
	}
	sealed, err := base64.StdEncoding.DecodeString(k.CipherText)
	if err != nil {
		return nil, errors.Wrap(err, "cipher text")
	}
	key, err := passphraseKey(passphrase, salt, k.KdfN)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, errors.New("malformed iv")
	}
	data, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return data, nil
}
