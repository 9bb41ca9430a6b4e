package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/cos-wallet/common/constants"
	"github.com/coschain/cos-wallet/db/storage"
	"github.com/deckarep/golang-set"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"github.com/tyler-smith/go-bip39"
)

const (
	sourcePrefix  = "source/"
	accountPrefix = "account/"
	versionKey    = "meta/version"
)

type unlockedSource struct {
	seed     []byte
	accounts mapset.Set // ids of unlocked accounts derived from the source
	expire   time.Time
}

type Option func(w *BaseWallet)

func WithHDPath(path string) Option {
	return func(w *BaseWallet) { w.hdPath = path }
}

// WithScryptN sets the scrypt cost of newly sealed keys.
func WithScryptN(n int) Option {
	return func(w *BaseWallet) { w.scryptN = n }
}

// WithAutoLock re-locks unlocked sources and accounts after d, checking every tick.
func WithAutoLock(d, tick time.Duration) Option {
	return func(w *BaseWallet) {
		w.autoLock = d
		w.tick = tick
	}
}

func WithNoticer(bus EventBus.Bus) Option {
	return func(w *BaseWallet) { w.noticer = bus }
}

func WithClock(now func() time.Time) Option {
	return func(w *BaseWallet) { w.now = now }
}

// BaseWallet keeps account sources and accounts sealed in db. Unlocking opens
// the secret in memory until Lock or expiry.
type BaseWallet struct {
	name string
	db   storage.Database
	log  *logrus.Logger

	noticer EventBus.Bus

	hdPath   string
	scryptN  int
	autoLock time.Duration
	tick     time.Duration
	now      func() time.Time

	// sources and accounts mirror the stored records
	sources  map[string]*AccountSource
	accounts map[string]*Account

	seeds    map[string]*unlockedSource
	unlocked map[string]*PrivAccount

	ticker *time.Ticker
	quit   chan struct{}
	wg     sync.WaitGroup

	mu deadlock.RWMutex
}

var _ Backend = (*BaseWallet)(nil)

func NewBaseWallet(name string, db storage.Database, log *logrus.Logger, opts ...Option) *BaseWallet {
	w := &BaseWallet{
		name:     name,
		db:       db,
		log:      log,
		hdPath:   constants.DefaultHDPath,
		scryptN:  StandardScryptN,
		tick:     time.Minute,
		now:      time.Now,
		sources:  make(map[string]*AccountSource),
		accounts: make(map[string]*Account),
		seeds:    make(map[string]*unlockedSource),
		unlocked: make(map[string]*PrivAccount),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *BaseWallet) Name() string {
	return w.name
}

// Open loads every stored record and starts the auto-lock timer.
func (w *BaseWallet) Open() error {
	if err := w.checkStoreVersion(); err != nil {
		return err
	}
	if err := w.LoadAll(); err != nil {
		return err
	}
	if w.autoLock > 0 && w.tick > 0 {
		w.ticker = time.NewTicker(w.tick)
		w.quit = make(chan struct{})
		w.wg.Add(1)
		go w.expireLoop()
	}
	return nil
}

func (w *BaseWallet) Close() error {
	if w.ticker != nil {
		w.ticker.Stop()
		close(w.quit)
		w.wg.Wait()
		w.ticker = nil
	}
	w.mu.Lock()
	w.seeds = make(map[string]*unlockedSource)
	w.unlocked = make(map[string]*PrivAccount)
	w.mu.Unlock()
	return w.db.Close()
}

// checkStoreVersion stamps an empty store and rejects one with another layout.
func (w *BaseWallet) checkStoreVersion() error {
	key := []byte(versionKey)
	want := strconv.Itoa(constants.StoreVersion)
	ok, err := w.db.Has(key)
	if err != nil {
		return err
	}
	if !ok {
		return w.db.Put(key, []byte(want))
	}
	found, err := w.db.Get(key)
	if err != nil {
		return err
	}
	if string(found) != want {
		return &StoreVersionError{Found: string(found), Want: want}
	}
	return nil
}

func (w *BaseWallet) LoadAll() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var decodeErr error
	err := w.db.Iterate([]byte(sourcePrefix), func(key, value []byte) bool {
		var src AccountSource
		if decodeErr = json.Unmarshal(value, &src); decodeErr != nil {
			decodeErr = errors.Wrapf(decodeErr, "decode %s", key)
			return false
		}
		w.sources[src.ID] = &src
		return true
	})
	if err != nil {
		return err
	}
	if decodeErr != nil {
		return decodeErr
	}
	err = w.db.Iterate([]byte(accountPrefix), func(key, value []byte) bool {
		var acc Account
		if decodeErr = json.Unmarshal(value, &acc); decodeErr != nil {
			decodeErr = errors.Wrapf(decodeErr, "decode %s", key)
			return false
		}
		w.accounts[acc.ID] = &acc
		return true
	})
	if err != nil {
		return err
	}
	w.log.Debugf("wallet %s loaded %d sources, %d accounts", w.name, len(w.sources), len(w.accounts))
	return decodeErr
}

func (w *BaseWallet) CreateMnemonicAccountSource(ctx context.Context, password string, entropy []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if entropy == nil {
		var err error
		if entropy, err = bip39.NewEntropy(constants.DefaultEntropy); err != nil {
			return "", err
		}
	}
	if !ValidEntropy(entropy) {
		return "", ErrInvalidEntropy
	}
	seed, err := seedFromEntropy(entropy)
	if err != nil {
		return "", err
	}
	key, err := EncryptData(entropy, []byte(password), w.scryptN)
	if err != nil {
		return "", err
	}
	src := &AccountSource{
		ID:        uuid.New().String(),
		Type:      mnemonicSource,
		Key:       *key,
		CreatedAt: w.now().Unix(),
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.putRecord(w.db, sourcePrefix+src.ID, src); err != nil {
		return "", err
	}
	w.sources[src.ID] = src
	w.seeds[src.ID] = &unlockedSource{seed: seed, accounts: mapset.NewSet(), expire: w.expiry()}
	w.log.Infof("created account source %s", src.ID)
	return src.ID, nil
}

func (w *BaseWallet) CreateAccounts(ctx context.Context, typ AccountType, sourceID string) ([]*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if typ != MnemonicDerived {
		return nil, &UnsupportedAccountTypeError{Type: typ}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	src, ok := w.sources[sourceID]
	if !ok {
		return nil, &UnknownAccountError{ID: sourceID}
	}
	open, ok := w.seeds[sourceID]
	if !ok {
		return nil, ErrAccountLocked
	}
	path, err := accountPath(w.hdPath, src.NextIndex)
	if err != nil {
		return nil, err
	}
	priv, err := deriveChildKey(open.seed, path)
	if err != nil {
		return nil, err
	}
	address, pubKey := addressOf(priv)
	acc := &Account{
		ID:             uuid.New().String(),
		Type:           MnemonicDerived,
		Address:        address,
		PubKey:         pubKey,
		SourceID:       sourceID,
		DerivationPath: path.String(),
		Credential:     PasswordCredential{SourceID: sourceID},
		CreatedAt:      w.now().Unix(),
	}

	next := *src
	next.NextIndex++
	batch := w.db.NewBatch()
	if err := w.putRecord(batch, sourcePrefix+src.ID, &next); err != nil {
		return nil, err
	}
	if err := w.putRecord(batch, accountPrefix+acc.ID, acc); err != nil {
		return nil, err
	}
	if err := batch.Write(); err != nil {
		return nil, err
	}
	*src = next
	w.accounts[acc.ID] = acc
	w.unlocked[acc.ID] = &PrivAccount{Account: *acc, PrivKey: priv, Expire: open.expire}
	open.accounts.Add(acc.ID)
	w.log.Infof("created account %s (%s) at %s", acc.ID, acc.Address, acc.DerivationPath)
	return []*Account{acc}, nil
}

// ImportPrivateKey adds an account holding its own key, sealed with password.
func (w *BaseWallet) ImportPrivateKey(ctx context.Context, password, hexKey string) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	priv, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	key, err := EncryptData(crypto.FromECDSA(priv), []byte(password), w.scryptN)
	if err != nil {
		return nil, err
	}
	address, pubKey := addressOf(priv)
	acc := &Account{
		ID:         uuid.New().String(),
		Type:       Imported,
		Address:    address,
		PubKey:     pubKey,
		Key:        key,
		Credential: PasswordCredential{},
		CreatedAt:  w.now().Unix(),
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.byAddress(address) != nil {
		return nil, &DuplicateAccountError{Address: address}
	}
	if err := w.putRecord(w.db, accountPrefix+acc.ID, acc); err != nil {
		return nil, err
	}
	w.accounts[acc.ID] = acc
	w.unlocked[acc.ID] = &PrivAccount{Account: *acc, PrivKey: priv, Expire: w.expiry()}
	w.log.Infof("imported account %s (%s)", acc.ID, acc.Address)
	return acc, nil
}

// AddFederatedAccount adds a locked account bound to an identity provider
// subject. Its address is derived from the identity.
func (w *BaseWallet) AddFederatedAccount(ctx context.Context, provider, issuer, subject string) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if issuer == "" || subject == "" {
		return nil, errors.New("federated account needs an issuer and a subject")
	}
	hash := crypto.Keccak256([]byte(issuer + "|" + subject))
	address := ethcommon.BytesToAddress(hash).Hex()
	acc := &Account{
		ID:         uuid.New().String(),
		Type:       Federated,
		Address:    address,
		Credential: FederatedCredential{Provider: provider, Issuer: issuer, Subject: subject},
		CreatedAt:  w.now().Unix(),
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.byAddress(address) != nil {
		return nil, &DuplicateAccountError{Address: address}
	}
	if err := w.putRecord(w.db, accountPrefix+acc.ID, acc); err != nil {
		return nil, err
	}
	w.accounts[acc.ID] = acc
	w.log.Infof("added %s account %s for %s", provider, acc.ID, subject)
	return acc, nil
}

// UnlockAccountSourceOrAccount unlocks a source with all its accounts, or a
// single account. A mnemonic-derived account is checked against its source
// password and opens the source as well.
func (w *BaseWallet) UnlockAccountSourceOrAccount(ctx context.Context, id, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if src, ok := w.sources[id]; ok {
		if _, ok := w.seeds[id]; ok {
			return &ReentrantUnlockedAccountError{ID: id}
		}
		open, err := w.openSource(src, password)
		if err != nil {
			return err
		}
		for _, acc := range w.accounts {
			if acc.SourceID == id {
				if err := w.unlockDerived(acc, open); err != nil {
					return err
				}
			}
		}
		w.log.Infof("unlocked account source %s", id)
		return nil
	}

	acc, ok := w.accounts[id]
	if !ok {
		return &UnknownAccountError{ID: id}
	}
	if _, ok := w.unlocked[id]; ok {
		return &ReentrantUnlockedAccountError{ID: id}
	}
	switch acc.Type {
	case MnemonicDerived:
		src, ok := w.sources[acc.SourceID]
		if !ok {
			return &UnknownAccountError{ID: acc.SourceID}
		}
		open, ok := w.seeds[src.ID]
		if ok {
			// the source is open already, still the password has to match
			if _, err := DecryptData(&src.Key, []byte(password)); err != nil {
				return err
			}
		} else {
			var err error
			if open, err = w.openSource(src, password); err != nil {
				return err
			}
		}
		if err := w.unlockDerived(acc, open); err != nil {
			return err
		}
	case Imported:
		raw, err := DecryptData(acc.Key, []byte(password))
		if err != nil {
			return err
		}
		priv, err := crypto.ToECDSA(raw)
		if err != nil {
			return err
		}
		w.unlocked[id] = &PrivAccount{Account: *acc, PrivKey: priv, Expire: w.expiry()}
	default:
		return ErrUnsupportedCredential
	}
	w.log.Infof("unlocked account %s", id)
	return nil
}

// UnlockFederatedAccount unlocks a federated account once the caller proved
// to be subject, the owner of the identity.
func (w *BaseWallet) UnlockFederatedAccount(ctx context.Context, id, subject string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	acc, ok := w.accounts[id]
	if !ok {
		return &UnknownAccountError{ID: id}
	}
	cred, ok := acc.Credential.(FederatedCredential)
	if !ok {
		return ErrUnsupportedCredential
	}
	if cred.Subject != subject {
		return ErrIdentityMismatch
	}
	if _, ok := w.unlocked[id]; ok {
		return &ReentrantUnlockedAccountError{ID: id}
	}
	w.unlocked[id] = &PrivAccount{Account: *acc, Expire: w.expiry()}
	w.log.Infof("unlocked %s account %s", cred.Provider, id)
	return nil
}

// LockAccountSourceOrAccount locks a source with all its accounts, or a
// single account. Locking something already locked is not an error.
func (w *BaseWallet) LockAccountSourceOrAccount(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.sources[id]; ok {
		w.lockSource(id)
		w.log.Infof("locked account source %s", id)
		return nil
	}
	acc, ok := w.accounts[id]
	if !ok {
		return &UnknownAccountError{ID: id}
	}
	delete(w.unlocked, id)
	if open, ok := w.seeds[acc.SourceID]; ok {
		open.accounts.Remove(id)
	}
	w.log.Infof("locked account %s", id)
	return nil
}

// RemoveAccount deletes an account. A derived account can be created again
// from its source.
func (w *BaseWallet) RemoveAccount(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	acc, ok := w.accounts[id]
	if !ok {
		return &UnknownAccountError{ID: id}
	}
	if err := w.db.Delete([]byte(accountPrefix + id)); err != nil {
		return err
	}
	w.forget(acc)
	w.log.Infof("removed account %s (%s)", id, acc.Address)
	return nil
}

// RemoveAccountSource deletes a source together with the accounts derived
// from it and returns the ids of those accounts.
func (w *BaseWallet) RemoveAccountSource(ctx context.Context, id string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.sources[id]; !ok {
		return nil, &UnknownAccountError{ID: id}
	}
	batch := w.db.NewBatch()
	if err := batch.Delete([]byte(sourcePrefix + id)); err != nil {
		return nil, err
	}
	var derived []*Account
	for accID, acc := range w.accounts {
		if acc.SourceID != id {
			continue
		}
		if err := batch.Delete([]byte(accountPrefix + accID)); err != nil {
			return nil, err
		}
		derived = append(derived, acc)
	}
	if err := batch.Write(); err != nil {
		return nil, err
	}

	w.lockSource(id)
	delete(w.sources, id)
	removed := make([]string, 0, len(derived))
	for _, acc := range derived {
		w.forget(acc)
		removed = append(removed, acc.ID)
	}
	sort.Strings(removed)
	w.log.Infof("removed account source %s with %d accounts", id, len(removed))
	return removed, nil
}

func (w *BaseWallet) forget(acc *Account) {
	delete(w.accounts, acc.ID)
	delete(w.unlocked, acc.ID)
	if open, ok := w.seeds[acc.SourceID]; ok {
		open.accounts.Remove(acc.ID)
	}
}

func (w *BaseWallet) IsLocked(id string) (bool, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if _, ok := w.sources[id]; ok {
		_, open := w.seeds[id]
		return !open, nil
	}
	if _, ok := w.accounts[id]; ok {
		_, open := w.unlocked[id]
		return !open, nil
	}
	return false, &UnknownAccountError{ID: id}
}

// Touch postpones the auto-lock of an unlocked source or account.
func (w *BaseWallet) Touch(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if open, ok := w.seeds[id]; ok {
		open.expire = w.expiry()
	}
	if acc, ok := w.unlocked[id]; ok {
		acc.Expire = w.expiry()
	}
}

// Account finds an account by id or address.
func (w *BaseWallet) Account(idOrAddress string) (*Account, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if acc, ok := w.accounts[idOrAddress]; ok {
		c := *acc
		return &c, nil
	}
	if acc := w.byAddress(idOrAddress); acc != nil {
		c := *acc
		return &c, nil
	}
	return nil, &UnknownAccountError{ID: idOrAddress}
}

func (w *BaseWallet) GetUnlockedAccount(id string) (*PrivAccount, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	acc, ok := w.unlocked[id]
	return acc, ok
}

func (w *BaseWallet) Accounts() []*Account {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Account, 0, len(w.accounts))
	for _, acc := range w.accounts {
		c := *acc
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (w *BaseWallet) Sources() []*AccountSource {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*AccountSource, 0, len(w.sources))
	for _, src := range w.sources {
		c := *src
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (w *BaseWallet) List() []string {
	var lines []string
	for _, acc := range w.Accounts() {
		status := "  locked"
		if locked, _ := w.IsLocked(acc.ID); !locked {
			status = "unlocked"
		}
		lines = append(lines, fmt.Sprintf("account: %s | %-16s | %s | status: %s", acc.ID, acc.Type, acc.Address, status))
	}
	return lines
}

func (w *BaseWallet) Info(id string) string {
	acc, err := w.Account(id)
	if err != nil {
		return fmt.Sprintf("unknown account: %s", id)
	}
	content := fmt.Sprintf("account: %s\ntype: %s\naddress: %s\n", acc.ID, acc.Type, acc.Address)
	switch cred := acc.Credential.(type) {
	case PasswordCredential:
		if cred.SourceID != "" {
			content += fmt.Sprintf("source: %s\npath: %s\n", cred.SourceID, acc.DerivationPath)
		}
	case FederatedCredential:
		content += fmt.Sprintf("provider: %s\nsubject: %s\n", cred.Provider, cred.Subject)
	}
	if locked, _ := w.IsLocked(acc.ID); locked {
		content += "status: locked"
	} else {
		content += "status: unlocked"
	}
	return content
}

func (w *BaseWallet) openSource(src *AccountSource, password string) (*unlockedSource, error) {
	entropy, err := DecryptData(&src.Key, []byte(password))
	if err != nil {
		return nil, err
	}
	seed, err := seedFromEntropy(entropy)
	if err != nil {
		return nil, err
	}
	open := &unlockedSource{seed: seed, accounts: mapset.NewSet(), expire: w.expiry()}
	w.seeds[src.ID] = open
	return open, nil
}

func (w *BaseWallet) unlockDerived(acc *Account, open *unlockedSource) error {
	path, err := ParseDerivationPath(acc.DerivationPath)
	if err != nil {
		return err
	}
	priv, err := deriveChildKey(open.seed, path)
	if err != nil {
		return err
	}
	w.unlocked[acc.ID] = &PrivAccount{Account: *acc, PrivKey: priv, Expire: open.expire}
	open.accounts.Add(acc.ID)
	return nil
}

func (w *BaseWallet) lockSource(id string) {
	open, ok := w.seeds[id]
	if !ok {
		return
	}
	for _, accID := range open.accounts.ToSlice() {
		delete(w.unlocked, accID.(string))
	}
	delete(w.seeds, id)
}

func (w *BaseWallet) byAddress(address string) *Account {
	for _, acc := range w.accounts {
		if strings.EqualFold(acc.Address, address) {
			return acc
		}
	}
	return nil
}

func (w *BaseWallet) expiry() time.Time {
	if w.autoLock <= 0 {
		return time.Time{}
	}
	return w.now().Add(w.autoLock)
}

func (w *BaseWallet) putRecord(db storage.DatabasePutter, key string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return db.Put([]byte(key), data)
}

func (w *BaseWallet) expireLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ticker.C:
			for _, id := range w.expire() {
				w.log.Infof("%s expired", id)
				if w.noticer != nil {
					w.noticer.Publish(constants.NoticeAccountExpired, id)
				}
			}
		case <-w.quit:
			return
		}
	}
}

// expire locks whatever outlived its expiry and returns the locked ids.
func (w *BaseWallet) expire() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	current := w.now()
	var expired []string
	for id, open := range w.seeds {
		if !open.expire.IsZero() && open.expire.Before(current) {
			w.lockSource(id)
			expired = append(expired, id)
		}
	}
	for id, acc := range w.unlocked {
		if !acc.Expire.IsZero() && acc.Expire.Before(current) {
			delete(w.unlocked, id)
			if open, ok := w.seeds[acc.SourceID]; ok {
				open.accounts.Remove(id)
			}
			expired = append(expired, id)
		}
	}
	sort.Strings(expired)
	return expired
}
