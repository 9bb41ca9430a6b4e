package wallet

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPassword         = errors.New("wrong password")
	ErrAccountLocked         = errors.New("account source is locked")
	ErrUnsupportedCredential = errors.New("credential does not support this unlock method")
	ErrInvalidEntropy        = errors.New("entropy must be 16 to 32 bytes, a multiple of 4")
	ErrIdentityMismatch      = errors.New("signed in identity does not own this account")
)

type UnknownAccountError struct {
	ID string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account or account source: %v", e.ID)
}

type ReentrantUnlockedAccountError struct {
	ID string
}

func (e *ReentrantUnlockedAccountError) Error() string {
	return fmt.Sprintf("re entrant unlocked account: %v", e.ID)
}

type UnsupportedAccountTypeError struct {
	Type AccountType
}

func (e *UnsupportedAccountTypeError) Error() string {
	return fmt.Sprintf("cannot create accounts of type %q from a source", e.Type)
}

type DuplicateAccountError struct {
	Address string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %s is already in the wallet", e.Address)
}

type StoreVersionError struct {
	Found string
	Want  string
}

func (e *StoreVersionError) Error() string {
	return fmt.Sprintf("keystore layout %s is not supported, want %s", e.Found, e.Want)
}
