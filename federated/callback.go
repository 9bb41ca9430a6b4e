package federated

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coschain/cos-wallet/common/constants"
	"github.com/coschain/cos-wallet/node"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type callbackResult struct {
	token string
	err   error
}

// CallbackServer receives the redirect of the identity provider after the
// user signed in and hands the id token to the request waiting on its state.
type CallbackServer struct {
	listen string
	log    *logrus.Logger
	engine *gin.Engine
	srv    *http.Server

	mu      sync.Mutex
	waiting map[string]chan callbackResult
}

func NewCallbackServer(listen string, log *logrus.Logger) *CallbackServer {
	gin.SetMode(gin.ReleaseMode)
	s := &CallbackServer{
		listen:  listen,
		log:     log,
		engine:  gin.New(),
		waiting: make(map[string]chan callbackResult),
	}
	s.engine.Use(gin.Recovery())
	s.engine.GET(constants.CallbackPath, s.callback)
	return s
}

func (s *CallbackServer) Handler() http.Handler {
	return s.engine
}

// RedirectURL is where the provider sends the user back to.
func (s *CallbackServer) RedirectURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return "http://" + s.listen + constants.CallbackPath
}

// expect registers state and returns the channel its redirect is delivered
// on. done must be called once the caller stops waiting.
func (s *CallbackServer) expect(state string) (result <-chan callbackResult, done func()) {
	ch := make(chan callbackResult, 1)
	s.mu.Lock()
	s.waiting[state] = ch
	s.mu.Unlock()
	return ch, func() {
		s.mu.Lock()
		delete(s.waiting, state)
		s.mu.Unlock()
	}
}

func (s *CallbackServer) callback(c *gin.Context) {
	state := c.Query("state")
	s.mu.Lock()
	ch, ok := s.waiting[state]
	delete(s.waiting, state)
	s.mu.Unlock()
	if !ok || state == "" {
		s.log.Warnf("login redirect with unknown state %q", state)
		c.String(http.StatusBadRequest, ErrUnknownState.Error())
		return
	}

	var res callbackResult
	if code := c.Query("error"); code != "" {
		res.err = &LoginError{Code: code, Description: c.Query("error_description")}
	} else if res.token = c.Query("id_token"); res.token == "" {
		res.err = ErrMissingToken
	}
	ch <- res

	if res.err != nil {
		c.String(http.StatusBadRequest, res.err.Error())
		return
	}
	c.String(http.StatusOK, "Signed in. You can return to the wallet.")
}

func (s *CallbackServer) Start(n *node.Node) error {
	ln, err := net.Listen("tcp", s.listen)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listen = ln.Addr().String()
	s.srv = &http.Server{Handler: s.engine}
	srv := s.srv
	s.mu.Unlock()

	s.log.Infof("federated login callback listening on %s", ln.Addr())
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Errorf("federated callback server: %v", err)
		}
	}()
	return nil
}

func (s *CallbackServer) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
