package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"pomodoro/internal/core/model"
)

type alarmSound struct {
	cmd  string
	args []string
}

// AlarmPlayer plays the end-of-session sound.
type AlarmPlayer struct {
	run  func(name string, args ...string) error
	bell io.Writer
}

// NewAlarmPlayer returns a player backed by the system sound tools.
func NewAlarmPlayer() *AlarmPlayer {
	return &AlarmPlayer{
		run:  runCommand,
		bell: os.Stdout,
	}
}

// Play tries each system player for the finished mode and falls back to the
// terminal bell. Platform-specific sound lists are in alarm_*.go files.
func (player *AlarmPlayer) Play(finished model.Mode) error {
	for _, sound := range alarmSounds(finished) {
		if err := player.run(sound.cmd, sound.args...); err == nil {
			return nil
		}
	}
	return player.terminalBell()
}

func (player *AlarmPlayer) terminalBell() error {
	if _, err := fmt.Fprint(player.bell, "\a"); err != nil {
		return fmt.Errorf("ring terminal bell: %w", err)
	}
	return nil
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}
