package constants

const (
	WalletName       = "coswallet"
	DefaultLogLevel  = "info"
	DefaultLogAge    = 24 * 7 // hours a rotated log file is kept
	DefaultAutoLock  = 5      // minutes an unlocked account stays unlocked
	DefaultAttempts  = 3      // password attempts per prompt in the terminal
	DefaultHDPath    = "m/44'/3077'/0'/0"
	DefaultEntropy   = 256
	CallbackPath     = "/callback"
	DefaultCallback  = "127.0.0.1:8790"
	KeyFileVersion   = 2
	// StoreVersion is the layout of the keystore database
	StoreVersion = 1
	KeyFileCipher    = "AES-256-GCM"
	LockFailedNotice = "Failed to lock account"
	LockedNotice     = "Account locked"

	NoticeUnlockPrompt   = "unlockprompt"
	NoticeToast          = "toast"
	NoticeAccountExpired = "accountexpired"
)
