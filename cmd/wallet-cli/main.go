package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/coschain/cobra"
	"github.com/coschain/cos-wallet/accountui"
	"github.com/coschain/cos-wallet/cmd/wallet-cli/commands"
	"github.com/coschain/cos-wallet/common"
	"github.com/coschain/cos-wallet/common/constants"
	"github.com/coschain/cos-wallet/common/eventloop"
	"github.com/coschain/cos-wallet/config"
	"github.com/coschain/cos-wallet/federated"
	"github.com/coschain/cos-wallet/iservices"
	"github.com/coschain/cos-wallet/mylog"
	"github.com/coschain/cos-wallet/node"
	"github.com/coschain/cos-wallet/prompt"
	"github.com/coschain/cos-wallet/unlock"
	"github.com/coschain/cos-wallet/wallet"
	"github.com/mgutz/ansi"
)

var (
	cfgName string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "wallet-cli",
	Short: "wallet-cli keeps account sources and accounts, unlocking them on demand",
}

func pcFromCommands(parent readline.PrefixCompleterInterface, c *cobra.Command) {
	pc := readline.PcItem(c.Use)
	parent.SetChildren(append(parent.GetChildren(), pc))
	for _, child := range c.Commands() {
		pcFromCommands(pc, child)
	}
}

func inheritContext(c *cobra.Command) {
	for _, child := range c.Commands() {
		child.Context = c.Context
		inheritContext(child)
	}
}

func newShell() *readline.Instance {
	completer := readline.NewPrefixCompleter()
	for _, child := range rootCmd.Commands() {
		pcFromCommands(completer, child)
	}
	shell, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: completer,
		EOFPrompt:    "exit",
	})
	if err != nil {
		common.Fatalf("cannot open the shell: %v", err)
	}
	return shell
}

// runShell feeds command lines to the main loop one at a time.
func runShell(app *node.Node, shell *readline.Instance, quit <-chan struct{}) {
	for {
		l, err := shell.Readline()
		if err != nil {
			return
		}
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		cmd, flags, err := rootCmd.Find(fields)
		if err != nil || cmd == rootCmd {
			fmt.Fprintf(shell.Stderr(), "unknown command %q\n", fields[0])
			continue
		}
		if err := cmd.ParseFlags(flags); err != nil {
			fmt.Fprintln(shell.Stderr(), err)
			continue
		}
		args := cmd.Flags().Args()
		if cmd.Args != nil {
			if err := cmd.Args(cmd, args); err != nil {
				fmt.Fprintln(shell.Stderr(), err)
				continue
			}
		}
		if cmd.Run == nil {
			fmt.Fprintln(shell.Stderr(), cmd.UsageString())
			continue
		}
		if !app.MainLoop.Send(func() { cmd.Run(cmd, args) }) {
			return
		}
		select {
		case <-quit:
			return
		default:
		}
	}
}

// shellReader reads passwords through the shell, which owns the terminal.
type shellReader struct {
	shell *readline.Instance
}

func (r shellReader) ReadPassword(fd int) ([]byte, error) {
	return r.shell.ReadPassword("")
}

// showToast renders toasts on the main loop, after the command that raised
// them.
func showToast(loop *eventloop.EventLoop, out io.Writer) func(toast unlock.Toast) {
	return func(toast unlock.Toast) {
		loop.Post(func() {
			color := "green"
			if toast.Kind == unlock.ToastError {
				color = "red"
			}
			fmt.Fprintln(out, ansi.Color(toast.Message, color))
		})
	}
}

// showExpired jumps ahead of queued commands so the user sees the lock first.
func showExpired(loop *eventloop.EventLoop, out io.Writer) func(id string) {
	return func(id string) {
		loop.PostHighPri(func() {
			fmt.Fprintln(out, ansi.Color(fmt.Sprintf("%s locked after inactivity", id), "yellow"))
		})
	}
}

func makeNode() (*node.Node, node.Config) {
	name := cfgName
	if name == "" {
		name = constants.WalletName
	}
	cfg, err := config.LoadWalletConfig(dataDir, name)
	if err != nil {
		common.Fatalf("%v", err)
	}
	log, err := mylog.Init(cfg.LogDir(), cfg.LogLevel, cfg.LogAge)
	if err != nil {
		common.Fatalf("cannot set up logging: %v", err)
	}
	app, err := node.New(&cfg, log)
	if err != nil {
		common.Fatalf("%v", err)
	}
	return app, cfg
}

func startWallet(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	app, cfg := makeNode()
	shell := newShell()
	defer shell.Close()
	out := shell.Stdout()

	if err := registerServices(app, cfg, shellReader{shell}, out); err != nil {
		common.Fatalf("register services failed, err: %v\n", err)
	}
	if err := app.Start(); err != nil {
		common.Fatalf("start wallet failed, err: %v\n", err)
	}
	w, fed, host, err := lookupServices(app, cfg.Federated.AuthURL != "")
	if err != nil {
		common.Fatalf("%v", err)
	}
	coord := host.Coordinator()
	_ = app.EvBus.Subscribe(constants.NoticeToast, showToast(app.MainLoop, out))
	_ = app.EvBus.Subscribe(constants.NoticeAccountExpired, showExpired(app.MainLoop, out))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	quit := make(chan struct{})
	rootCmd.SetContext("ctx", ctx)
	rootCmd.SetContext("wallet", w)
	rootCmd.SetContext("coordinator", coord)
	rootCmd.SetContext("control", accountui.NewControl(coord, w, fed))
	rootCmd.SetContext("preader", shellReader{shell})
	rootCmd.SetContext("quit", func() { close(quit) })
	inheritContext(rootCmd)

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		select {
		case <-sigc:
			app.Log.Info("Got interrupt, shutting down...")
		case <-quit:
		}
		cancel()
		shell.Close()
	}()
	go func() {
		runShell(app, shell, quit)
		cancel()
		if err := app.Stop(); err != nil {
			app.Log.Error(err)
		}
	}()

	app.Wait()
}

const promptServerName = "prompt"

func registerServices(app *node.Node, cfg node.Config, reader prompt.PasswordReader, out io.Writer) error {
	err := app.Register(iservices.WalletServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return wallet.New(ctx)
	})
	if err != nil {
		return err
	}
	if cfg.Federated.AuthURL != "" {
		err = app.Register(iservices.FederatedServerName, func(ctx *node.ServiceContext) (node.Service, error) {
			return federated.New(ctx, out)
		})
		if err != nil {
			return err
		}
	}
	return app.Register(promptServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		s, err := ctx.Service(iservices.WalletServerName)
		if err != nil {
			return nil, err
		}
		w, ok := s.(*wallet.BaseWallet)
		if !ok {
			return nil, &node.ServiceTypeError{Name: iservices.WalletServerName, Want: "*wallet.BaseWallet"}
		}
		coord := unlock.NewCoordinator(w, ctx.Noticer(), ctx.Log())
		return prompt.NewHost(coord, w, reader, out, cfg.Wallet.PromptAttempts, ctx.Log()), nil
	})
}

func lookupServices(app *node.Node, withFederated bool) (iservices.IWallet, iservices.IFederated, *prompt.Host, error) {
	s, err := app.Service(iservices.WalletServerName)
	if err != nil {
		return nil, nil, nil, err
	}
	w, ok := s.(iservices.IWallet)
	if !ok {
		return nil, nil, nil, &node.ServiceTypeError{Name: iservices.WalletServerName, Want: "iservices.IWallet"}
	}
	var fed iservices.IFederated
	if withFederated {
		if s, err = app.Service(iservices.FederatedServerName); err != nil {
			return nil, nil, nil, err
		}
		if fed, ok = s.(iservices.IFederated); !ok {
			return nil, nil, nil, &node.ServiceTypeError{Name: iservices.FederatedServerName, Want: "iservices.IFederated"}
		}
	}
	if s, err = app.Service(promptServerName); err != nil {
		return nil, nil, nil, err
	}
	host, ok := s.(*prompt.Host)
	if !ok {
		return nil, nil, nil, &node.ServiceTypeError{Name: promptServerName, Want: "*prompt.Host"}
	}
	return w, fed, host, nil
}

func addCommands() {
	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.SourceCmd())
	rootCmd.AddCommand(commands.AccountCmd())
	rootCmd.AddCommand(commands.ImportCmd())
	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(commands.InfoCmd())
	rootCmd.AddCommand(commands.UnlockCmd())
	rootCmd.AddCommand(commands.LockCmd())
	rootCmd.AddCommand(commands.IsLockedCmd())
	rootCmd.AddCommand(commands.RemoveCmd())
	rootCmd.AddCommand(commands.CloseCmd())
}

func init() {
	addCommands()
	rootCmd.Flags().StringVarP(&cfgName, "name", "n", "", "wallet name (default is coswallet)")
	rootCmd.Flags().StringVarP(&dataDir, "datadir", "d", "", "data directory (default is ~/.coswallet)")
	rootCmd.Run = startWallet
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
