package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"

	"github.com/daytone/daytone/internal/config"
	"github.com/daytone/daytone/internal/logging"
	"github.com/daytone/daytone/internal/messages"
	"github.com/daytone/daytone/internal/ui/common"
	"github.com/daytone/daytone/internal/ui/tuner"
)

// Update handles all messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyPressMsg:
		return a, a.handleKey(msg)

	case tea.MouseClickMsg:
		return a, a.handleClick(msg)

	case tea.MouseMotionMsg, tea.MouseReleaseMsg:
		return a, a.routePointer(msg)

	case tuner.FrameMsg:
		return a, a.routeFrame(msg)

	case bannerTickMsg:
		if a.playback.Playing() {
			a.bannerPos++
		}
		return a, a.bannerTick()

	case messages.ChannelChanged:
		return a, a.channelChanged(msg)

	case messages.TuningDone:
		if msg.Token == a.tuningToken {
			a.channel.SetDisabled(false)
		}
		return a, nil

	case messages.TogglePlayback:
		return a, a.togglePlayback()

	case messages.PlaybackChanged:
		logging.Debug("playback changed: playing=%v", msg.Playing)
		return a, nil

	case messages.StoreChanged:
		return a, a.storeChanged()

	case messages.SwitchView:
		return a, a.switchView(msg.View)

	case messages.ShowPricing:
		return a, a.openPricing()

	case messages.ClosePricing:
		a.pricing.Close()
		return a, nil

	case messages.DraftSaved:
		logging.Debug("draft saved: %s", msg.ID)
		return a, nil

	case messages.Toast:
		return a, a.toast.ShowMessage(msg)

	case common.ToastDismissed:
		a.toast, _ = a.toast.Update(msg)
		return a, nil

	case messages.Error:
		if !msg.Logged {
			logging.Error("%s: %v", msg.Context, msg.Err)
		}
		return a, a.toast.ShowMessage(messages.Toast{Message: msg.Error(), Level: messages.ToastError})
	}

	if a.view == messages.ViewWrite {
		var cmd tea.Cmd
		a.write, cmd = a.write.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, a.keymap.Quit) {
		a.quitting = true
		leave := a.write.Leave()
		return tea.Sequence(common.SafeCmd(leave), tea.Quit)
	}
	if a.pricing.Visible() {
		var cmd tea.Cmd
		a.pricing, cmd = a.pricing.Update(msg)
		return cmd
	}
	// The topic editor owns the keyboard while it is open.
	if a.view == messages.ViewWrite && a.write.Card().Editing() {
		var cmd tea.Cmd
		a.write, cmd = a.write.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, a.keymap.TogglePlay):
		return a.togglePlayback()
	case key.Matches(msg, a.keymap.Radio):
		return a.switchView(messages.ViewRadio)
	case key.Matches(msg, a.keymap.Write):
		return a.switchView(messages.ViewWrite)
	case key.Matches(msg, a.keymap.CycleView):
		return a.switchView(a.view.Next())
	case key.Matches(msg, a.keymap.Pricing):
		return a.openPricing()
	case key.Matches(msg, a.keymap.Hints):
		return a.toggleSetting(config.SettingKeymapHints)
	case key.Matches(msg, a.keymap.TickMarks):
		return a.toggleSetting(config.SettingTickMarks)
	}

	if a.view == messages.ViewRadio {
		return a.handleRadioKey(msg)
	}
	return a.handleWriteKey(msg)
}

func (a *App) handleRadioKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.ChannelPrev):
		return a.channel.Nudge(-1)
	case key.Matches(msg, a.keymap.ChannelNext):
		return a.channel.Nudge(1)
	case key.Matches(msg, a.keymap.GenrePrev):
		return a.genre.Nudge(-1)
	case key.Matches(msg, a.keymap.GenreNext):
		return a.genre.Nudge(1)
	}
	return nil
}

func (a *App) handleWriteKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.SaveDraft):
		return a.write.PressButton()
	case key.Matches(msg, a.keymap.Copy):
		return a.write.Copy()
	case key.Matches(msg, a.keymap.NextPrompt):
		a.write.Card().Rotate()
		return nil
	case key.Matches(msg, a.keymap.EditTopics):
		return a.write.Card().OpenEditor()
	}
	var cmd tea.Cmd
	a.write, cmd = a.write.Update(msg)
	return cmd
}

func (a *App) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	if a.pricing.Visible() {
		var cmd tea.Cmd
		a.pricing, cmd = a.pricing.Update(msg)
		return cmd
	}
	if msg.Button != tea.MouseLeft {
		return nil
	}
	if msg.Y == 0 {
		if id, ok := a.headerHit(msg.X, msg.Y); ok {
			return a.pressHeader(id)
		}
		return nil
	}
	if a.view == messages.ViewWrite {
		var cmd tea.Cmd
		a.write, cmd = a.write.Update(msg)
		return cmd
	}
	return a.routePointer(msg)
}

// routePointer hands radio-view pointer input to both tuners. Each tuner
// ignores presses outside its own region and motion it did not start.
func (a *App) routePointer(msg tea.Msg) tea.Cmd {
	if a.view != messages.ViewRadio || a.pricing.Visible() {
		return nil
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.channel, cmd = a.channel.Update(msg)
	cmds = append(cmds, cmd)
	a.genre, cmd = a.genre.Update(msg)
	cmds = append(cmds, cmd)
	return common.SafeBatch(cmds...)
}

// releaseTuners ends any press the tuners still hold. Releases are only
// routed on the bare radio view.
func (a *App) releaseTuners() tea.Cmd {
	return common.SafeBatch(a.channel.Cancel(), a.genre.Cancel())
}

func (a *App) openPricing() tea.Cmd {
	a.pricing.Open()
	return a.releaseTuners()
}

func (a *App) routeFrame(msg tuner.FrameMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg.Tuner {
	case a.channel.Name():
		a.channel, cmd = a.channel.Update(msg)
	case a.genre.Name():
		a.genre, cmd = a.genre.Update(msg)
	}
	return cmd
}

func (a *App) pressHeader(id string) tea.Cmd {
	logging.Debug("header click: %s", id)
	switch id {
	case zoneTabRadio:
		return a.switchView(messages.ViewRadio)
	case zoneTabWrite:
		return a.switchView(messages.ViewWrite)
	case zonePlay:
		return a.togglePlayback()
	case zoneFree:
		return a.openPricing()
	}
	return nil
}
