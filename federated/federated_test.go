package federated

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/coschain/cos-wallet/iservices"
	"github.com/coschain/cos-wallet/iservices/service-configs"
	"github.com/coschain/cos-wallet/mylog"
	"github.com/coschain/cos-wallet/node"
	"github.com/coschain/cos-wallet/wallet"
	"github.com/coschain/cos-wallet/wallet/mock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	perrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey    = "0123456789abcdef0123456789abcdef"
	testIssuer = "https://accounts.example.com"
	testClient = "cos-wallet"
)

var testCred = wallet.FederatedCredential{Provider: "example", Issuer: testIssuer, Subject: "1234"}

func signToken(t *testing.T, key string, claims jwt.Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func validClaims(subject string) IdentityClaims {
	return IdentityClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{testClient},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}}
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestCallbackDeliversToken(t *testing.T) {
	s := NewCallbackServer("127.0.0.1:8790", mylog.Discard())
	result, done := s.expect("abc")
	defer done()

	w := get(s.Handler(), "/callback?state=abc&id_token=tok")
	assert.Equal(t, http.StatusOK, w.Code)
	res := <-result
	assert.NoError(t, res.err)
	assert.Equal(t, "tok", res.token)

	// a state is answered once
	w = get(s.Handler(), "/callback?state=abc&id_token=tok")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCallbackErrors(t *testing.T) {
	s := NewCallbackServer("127.0.0.1:8790", mylog.Discard())

	w := get(s.Handler(), "/callback?state=nope&id_token=tok")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrUnknownState.Error())

	result, done := s.expect("s1")
	defer done()
	w = get(s.Handler(), "/callback?state=s1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrMissingToken, (<-result).err)

	result, done2 := s.expect("s2")
	defer done2()
	w = get(s.Handler(), "/callback?state=s2&error=access_denied&error_description=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := <-result
	assert.Equal(t, &LoginError{Code: "access_denied", Description: "nope"}, res.err)
	assert.Equal(t, "login failed: access_denied: nope", res.err.Error())
}

func TestCallbackServerStartStop(t *testing.T) {
	s := NewCallbackServer("127.0.0.1:0", mylog.Discard())
	require.NoError(t, s.Start(nil))
	defer s.Stop()

	result, done := s.expect("live")
	defer done()
	resp, err := http.Get(s.RedirectURL() + "?state=live&id_token=tok")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "tok", (<-result).token)

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
}

type chanWriter chan string

func (w chanWriter) Write(p []byte) (int, error) {
	w <- string(p)
	return len(p), nil
}

var urlPattern = regexp.MustCompile(`https?://\S+`)

func TestReauthenticate(t *testing.T) {
	s := NewCallbackServer("127.0.0.1:8790", mylog.Discard())
	out := make(chanWriter, 1)
	cfg := service_configs.FederatedConfig{Provider: "example", AuthURL: "https://login.example.com/auth", ClientID: testClient}
	r := NewReauthenticator(cfg, s, out)

	type result struct {
		token string
		err   error
	}
	results := make(chan result, 1)
	go func() {
		token, err := r.Reauthenticate(context.Background(), testCred)
		results <- result{token, err}
	}()

	login, err := url.Parse(urlPattern.FindString(<-out))
	require.NoError(t, err)
	assert.Equal(t, "login.example.com", login.Host)
	q := login.Query()
	assert.Equal(t, testClient, q.Get("client_id"))
	assert.Equal(t, "http://127.0.0.1:8790/callback", q.Get("redirect_uri"))
	assert.Equal(t, "1234", q.Get("login_hint"))
	require.NotEmpty(t, q.Get("state"))

	w := get(s.Handler(), "/callback?state="+q.Get("state")+"&id_token=tok")
	assert.Equal(t, http.StatusOK, w.Code)
	res := <-results
	assert.NoError(t, res.err)
	assert.Equal(t, "tok", res.token)
}

func TestReauthenticateCancelled(t *testing.T) {
	s := NewCallbackServer("127.0.0.1:8790", mylog.Discard())
	cfg := service_configs.FederatedConfig{AuthURL: "https://login.example.com/auth?prompt=login"}
	out := make(chanWriter, 1)
	r := NewReauthenticator(cfg, s, out)
	assert.Contains(t, r.LoginURL("st", ""), "/auth?prompt=login&")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.Reauthenticate(ctx, testCred)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Empty(t, s.waiting)

	_, err = NewReauthenticator(service_configs.FederatedConfig{}, s, out).Reauthenticate(ctx, testCred)
	assert.Equal(t, ErrNotConfigured, err)
}

func TestTokenVerifier(t *testing.T) {
	v := NewTokenVerifier(testKey, testIssuer, testClient)

	claims, err := v.Verify(signToken(t, testKey, validClaims("1234")))
	require.NoError(t, err)
	assert.Equal(t, "1234", claims.Subject)

	_, err = v.Verify(signToken(t, "another key", validClaims("1234")))
	assert.Error(t, err)

	expired := validClaims("1234")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	_, err = v.Verify(signToken(t, testKey, expired))
	assert.True(t, errors.Is(perrors.Cause(err), jwt.ErrTokenExpired))

	noExp := validClaims("1234")
	noExp.ExpiresAt = nil
	_, err = v.Verify(signToken(t, testKey, noExp))
	assert.Error(t, err)

	otherIssuer := validClaims("1234")
	otherIssuer.Issuer = "https://evil.example.com"
	_, err = v.Verify(signToken(t, testKey, otherIssuer))
	assert.True(t, errors.Is(perrors.Cause(err), jwt.ErrTokenInvalidIssuer))

	_, err = v.Verify(signToken(t, testKey, validClaims("")))
	assert.Equal(t, ErrMissingClaim, err)

	_, err = v.Verify("not a token")
	assert.Error(t, err)

	_, err = NewTokenVerifier("", testIssuer, "").Verify(signToken(t, testKey, validClaims("1234")))
	assert.Error(t, err)
}

type authFunc func(ctx context.Context, cred wallet.FederatedCredential) (string, error)

func (f authFunc) Reauthenticate(ctx context.Context, cred wallet.FederatedCredential) (string, error) {
	return f(ctx, cred)
}

func tokenFor(t *testing.T, subject string) authFunc {
	token := signToken(t, testKey, validClaims(subject))
	return func(ctx context.Context, cred wallet.FederatedCredential) (string, error) {
		return token, nil
	}
}

func TestUnlocker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockIWallet(ctrl)
	acct := &wallet.Account{ID: "acct-1", Type: wallet.Federated, Credential: testCred}
	verifier := NewTokenVerifier(testKey, testIssuer, testClient)

	backend.EXPECT().UnlockFederatedAccount(gomock.Any(), "acct-1", "1234").Return(nil)
	u := NewUnlocker(tokenFor(t, "1234"), verifier, backend, mylog.Discard())
	assert.NoError(t, u.Unlock(context.Background(), acct, testCred))

	u = NewUnlocker(tokenFor(t, "9999"), verifier, backend, mylog.Discard())
	assert.Equal(t, wallet.ErrIdentityMismatch, u.Unlock(context.Background(), acct, testCred))

	denied := &LoginError{Code: "access_denied"}
	u = NewUnlocker(authFunc(func(ctx context.Context, cred wallet.FederatedCredential) (string, error) {
		return "", denied
	}), verifier, backend, mylog.Discard())
	err := u.Unlock(context.Background(), acct, testCred)
	assert.Equal(t, denied, perrors.Cause(err))
}

func TestServiceNeedsWallet(t *testing.T) {
	dir, err := ioutil.TempDir("", "federated")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := &node.Config{Name: "test", DataDir: dir}
	cfg.Federated = service_configs.FederatedConfig{AuthURL: "https://login.example.com/auth", Listen: "127.0.0.1:0"}
	n, err := node.New(cfg, mylog.Discard())
	require.NoError(t, err)
	require.NoError(t, n.Register(iservices.FederatedServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return New(ctx, ioutil.Discard)
	}))
	assert.IsType(t, &node.UnknownServiceError{}, n.Start())
}

func TestServiceWiring(t *testing.T) {
	dir, err := ioutil.TempDir("", "federated")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := &node.Config{Name: "test", DataDir: dir}
	cfg.Federated = service_configs.FederatedConfig{AuthURL: "https://login.example.com/auth", Listen: "127.0.0.1:0"}
	n, err := node.New(cfg, mylog.Discard())
	require.NoError(t, err)
	require.NoError(t, n.Register(iservices.WalletServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return wallet.New(ctx)
	}))
	require.NoError(t, n.Register(iservices.FederatedServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return New(ctx, ioutil.Discard)
	}))
	require.NoError(t, n.Start())
	defer n.Stop()

	s, err := n.Service(iservices.FederatedServerName)
	require.NoError(t, err)
	fed, ok := s.(iservices.IFederated)
	require.True(t, ok)
	assert.NotNil(t, fed)
	assert.NotContains(t, s.(*Service).RedirectURL(), ":0/")
}

type idleService struct{}

func (idleService) Start(n *node.Node) error { return nil }
func (idleService) Stop() error              { return nil }

func TestServiceWrongWallet(t *testing.T) {
	dir, err := ioutil.TempDir("", "federated")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := &node.Config{Name: "test", DataDir: dir}
	n, err := node.New(cfg, mylog.Discard())
	require.NoError(t, err)
	require.NoError(t, n.Register(iservices.WalletServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return idleService{}, nil
	}))
	require.NoError(t, n.Register(iservices.FederatedServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return New(ctx, ioutil.Discard)
	}))
	assert.IsType(t, &node.ServiceTypeError{}, n.Start())
}
