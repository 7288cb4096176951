package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tapecalc/internal/app"
	"tapecalc/internal/config"
	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/logger"
)

// state is shared by every subcommand of one root command.
type state struct {
	home       string
	precision  string
	display    string
	feet       bool
	storeName  string
	serverURL  string
	passphrase string
	logLevel   string

	cfg  config.Config
	wire *app.Wire
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:           "tapecalc",
		Short:         "Tape-measure calculator for feet, inches and fractions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st.wire == nil {
				return nil
			}
			return st.wire.Close()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&st.home, "home", "", "data dir (default $TAPECALC_HOME or ~/.tapecalc)")
	f.StringVar(&st.precision, "precision", "", "tape graduation: 8, 16 or 32")
	f.StringVar(&st.display, "display", "", "fraction display: reduced or sixteenths")
	f.BoolVar(&st.feet, "feet", false, "show lengths of a foot or more as feet and inches")
	f.StringVar(&st.storeName, "store", "", "storage backend: file or sqlite")
	f.StringVar(&st.serverURL, "server", "", "tapecalc server base URL (e.g. http://127.0.0.1:8080)")
	f.StringVarP(&st.passphrase, "passphrase", "p", "", "passphrase to seal the file store")
	f.StringVar(&st.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		calcCmd(st),
		convertCmd(st),
		roundCmd(st),
		divideCmd(st),
		intervalCmd(st),
		spacingCmd(st),
		historyCmd(st),
		savedCmd(st),
		replCmd(st),
	)
	return root
}

// load resolves the configuration: defaults, config file, environment,
// then any flag set on the command line.
func (st *state) load(cmd *cobra.Command) error {
	home := st.home
	if home == "" {
		dir, err := config.DefaultHome()
		if err != nil {
			return err
		}
		home = dir
	}
	cfg, err := config.Load(home)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		p, err := imperial.ParsePrecision(st.precision)
		if err != nil {
			return err
		}
		cfg.Precision = int(p)
	}
	if flags.Changed("display") {
		cfg.Display = st.display
	}
	if flags.Changed("feet") {
		cfg.Feet = st.feet
	}
	if flags.Changed("store") {
		cfg.Store = st.storeName
	}
	if flags.Changed("passphrase") {
		cfg.Passphrase = st.passphrase
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = st.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(cfg.LoggerConfig())
	st.cfg = cfg
	return nil
}

// api returns the local services or the remote client, building them on
// first use.
func (st *state) api() (domain.RemoteClient, error) {
	if st.wire == nil {
		w, err := app.NewWire(app.Config{
			Home:       st.cfg.Home,
			Backend:    st.cfg.Backend(),
			Passphrase: st.cfg.Passphrase,
			ServerURL:  st.serverURL,
			Precision:  st.cfg.PrecisionValue(),
			Display:    st.cfg.DisplayOptions(),
		})
		if err != nil {
			return nil, err
		}
		st.wire = w
	}
	return st.wire.API, nil
}

func (st *state) precisionValue() imperial.Precision { return st.cfg.PrecisionValue() }

func (st *state) displayOptions() imperial.DisplayOptions { return st.cfg.DisplayOptions() }

// pick returns the rendering of calc that matches the configured display.
func (st *state) pick(calc domain.Calculation) string {
	if st.displayOptions().Format == imperial.Sixteenths {
		return calc.Sixteenths
	}
	return calc.Result
}

var errNoMarks = fmt.Errorf("%w: no marks for these inputs", domain.ErrInvalidRequest)
