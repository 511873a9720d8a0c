package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/daytone/daytone/internal/config"
	"github.com/daytone/daytone/internal/drafts"
	"github.com/daytone/daytone/internal/keymap"
	"github.com/daytone/daytone/internal/logging"
	"github.com/daytone/daytone/internal/messages"
	"github.com/daytone/daytone/internal/playback"
	"github.com/daytone/daytone/internal/prompts"
	"github.com/daytone/daytone/internal/safego"
	"github.com/daytone/daytone/internal/session"
	"github.com/daytone/daytone/internal/store"
	"github.com/daytone/daytone/internal/ui/common"
	"github.com/daytone/daytone/internal/ui/layout"
	"github.com/daytone/daytone/internal/ui/pricing"
	"github.com/daytone/daytone/internal/ui/tuner"
	"github.com/daytone/daytone/internal/ui/write"
)

// Tuner names, also used to route animation frames.
const (
	TunerChannel = "channel"
	TunerGenre   = "genre"
)

const bannerInterval = 250 * time.Millisecond

// bannerTickMsg advances the scrolling session banner.
type bannerTickMsg struct{}

// App is the root Bubbletea model
type App struct {
	// Configuration
	config *config.Config
	keymap keymap.KeyMap
	styles common.Styles
	zone   *zone.Manager

	// State
	store    *store.Store
	watcher  *store.Watcher
	playback *playback.State
	book     *drafts.Book

	view        messages.View
	sessionName string
	bannerPos   int
	tuningToken int
	width       int
	height      int
	ready       bool
	quitting    bool

	// UI Components
	layout  *layout.Manager
	channel *tuner.Model
	genre   *tuner.Model
	write   *write.Model
	pricing *pricing.Model
	toast   *common.ToastModel

	ctx    context.Context
	cancel context.CancelFunc

	externalMsgs        chan tea.Msg
	externalSender      func(tea.Msg)
	externalOnce        sync.Once
	externalDropLastLog atomic.Int64
}

// New creates the application over cfg. The shared store is opened at
// cfg.Paths.StatePath and watched for changes from other instances.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}
	st, err := store.Open(cfg.Paths.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	channel, err := tuner.New(TunerChannel, cfg.Channel, cfg.Motion)
	if err != nil {
		return nil, err
	}
	genre, err := tuner.New(TunerGenre, cfg.Genre, cfg.Motion)
	if err != nil {
		return nil, err
	}
	channel.SetTickMarks(cfg.UI.TickMarks)

	book := drafts.New(st)
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		config:      cfg,
		keymap:      keymap.New(cfg.KeyMap),
		styles:      common.DefaultStyles(),
		zone:        zone.New(),
		store:       st,
		playback:    playback.New(st),
		book:        book,
		view:        messages.ViewRadio,
		sessionName: session.Random(time.Now(), nil),
		layout:      layout.NewManager(),
		channel:     channel,
		genre:       genre,
		write:       write.New(book, prompts.NewDeck(prompts.DefaultTopics)),
		pricing:     pricing.New(),
		toast:       common.NewToastModel(),
		ctx:         ctx,
		cancel:      cancel,

		externalMsgs: make(chan tea.Msg, externalMsgBuffer),
	}

	w, err := store.NewWatcher(st.Path(), func() {
		a.enqueueExternalMsg(messages.StoreChanged{})
	})
	if err != nil {
		logging.Warn("store watcher unavailable, other instances will not sync: %v", err)
	} else {
		a.watcher = w
	}

	logging.Info("app ready: channel=%s genre=%s playing=%v", channel.Selected(), genre.Selected(), a.playback.Playing())
	return a, nil
}

// Init starts the store watcher and the banner animation.
func (a *App) Init() tea.Cmd {
	if a.watcher != nil {
		w := a.watcher
		safego.GoErr("store-watcher", func() error { return w.Run(a.ctx) })
	}
	return a.bannerTick()
}

// Shutdown stops background work.
func (a *App) Shutdown() {
	a.cancel()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logging.Warn("closing store watcher: %v", err)
		}
	}
	if a.zone != nil {
		a.zone.Close()
	}
}

// CurrentView returns the view currently shown.
func (a *App) CurrentView() messages.View { return a.view }

// Playing reports the shared play/pause flag.
func (a *App) Playing() bool { return a.playback.Playing() }

// Channel returns the channel tuner.
func (a *App) Channel() *tuner.Model { return a.channel }

// Genre returns the genre tuner.
func (a *App) Genre() *tuner.Model { return a.genre }

// SessionName returns the banner text.
func (a *App) SessionName() string { return a.sessionName }

func (a *App) bannerTick() tea.Cmd {
	return common.SafeTick(bannerInterval, func(time.Time) tea.Msg { return bannerTickMsg{} })
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.ready = true
	a.layout.Resize(width, height)
	a.channel.SetRegion(a.layout.Channel())
	a.genre.SetRegion(a.layout.Genre())
	a.write.SetRegion(a.layout.Body())
	a.pricing.SetSize(width, height)
}

func (a *App) switchView(v messages.View) tea.Cmd {
	if v == a.view {
		return nil
	}
	cmds := []tea.Cmd{a.releaseTuners()}
	if a.view == messages.ViewWrite {
		cmds = append(cmds, a.write.Leave())
		a.write.Blur()
	}
	a.view = v
	if v == messages.ViewWrite {
		cmds = append(cmds, a.write.Focus())
	}
	logging.Debug("view: %s", v)
	return common.SafeBatch(cmds...)
}

func (a *App) togglePlayback() tea.Cmd {
	playing, err := a.playback.Toggle()
	if err != nil {
		logging.Error("toggle playback: %v", err)
		return func() tea.Msg {
			return messages.Error{Err: err, Context: "playback", Logged: true}
		}
	}
	logging.Info("playback: playing=%v", playing)
	return func() tea.Msg { return messages.PlaybackChanged{Playing: playing} }
}

// toggleSetting flips a display preference, saves it to the config file and
// applies it to the running UI.
func (a *App) toggleSetting(name config.UISetting) tea.Cmd {
	on, err := a.config.ToggleUISetting(name)
	if err != nil {
		logging.Error("toggle %s: %v", name, err)
		return func() tea.Msg {
			return messages.Error{Err: err, Context: "settings", Logged: true}
		}
	}
	if name == config.SettingTickMarks {
		a.channel.SetTickMarks(on)
	}
	state := "off"
	if on {
		state = "on"
	}
	logging.Info("setting %s=%v", name, on)
	return a.toast.ShowMessage(messages.Toast{
		Message: fmt.Sprintf("%s %s", settingLabel(name), state),
		Level:   messages.ToastInfo,
	})
}

func settingLabel(name config.UISetting) string {
	switch name {
	case config.SettingKeymapHints:
		return "Key hints"
	case config.SettingTickMarks:
		return "Tick marks"
	}
	return string(name)
}

// channelChanged disables the channel tuner while the new channel "tunes".
func (a *App) channelChanged(msg messages.ChannelChanged) tea.Cmd {
	logging.Info("%s tuner settled on %s (%d)", msg.Tuner, msg.Item, msg.Index)
	if msg.Tuner != TunerChannel || a.config.Motion.TuningDuration <= 0 {
		return nil
	}
	a.tuningToken++
	token := a.tuningToken
	a.channel.SetDisabled(true)
	return common.SafeTick(a.config.Motion.TuningDuration, func(time.Time) tea.Msg {
		return messages.TuningDone{Token: token}
	})
}

func (a *App) storeChanged() tea.Cmd {
	keys, err := a.store.Reload()
	if err != nil {
		logging.Warn("store reload failed: %v", err)
		return nil
	}
	if len(keys) == 0 {
		return nil
	}
	logging.Debug("store changed externally: %v", keys)
	if a.playback.Reload() {
		playing := a.playback.Playing()
		return func() tea.Msg { return messages.PlaybackChanged{Playing: playing} }
	}
	return nil
}
